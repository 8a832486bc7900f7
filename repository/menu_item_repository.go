package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAvailableByRestaurant lists a restaurant's menu. Unavailable items are
// always excluded, this is the only place isAvailable gates anything.
func (r *MenuItemRepository) FindAvailableByRestaurant(restID uint) ([]entity.MenuItem, error) {
	items := []entity.MenuItem{}
	err := r.DB.
		Where("restaurant_id = ? AND is_available = ?", restID, true).
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}
