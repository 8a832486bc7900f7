package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindContact fetches just the fields the top-customers report merges in.
func (r *CustomerRepository) FindContact(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Select("id, name, email").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
