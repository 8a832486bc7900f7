package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backend/entity"
)

// Connect opens the database named by the config. The handle is returned to
// the caller; nothing here keeps package state.
func Connect(cfg *Config) (*gorm.DB, error) {
	// References are validated (or deliberately not validated) in the
	// handlers, never by the schema.
	gormCfg := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}

	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBSource), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Customer{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
