package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"backend/configs"
	"backend/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// one connection so every statement sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) *entity.Customer {
	t.Helper()
	c := entity.Customer{Name: name, Email: email}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	r := entity.Restaurant{Name: name, Location: "Downtown"}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

func seedMenuItem(t *testing.T, db *gorm.DB, restID uint, name string, price float64, available bool) *entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{Name: name, Price: price, IsAvailable: available, RestaurantID: restID}
	require.NoError(t, db.Create(&m).Error)
	return &m
}
