package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindWithItems eager-loads the order's line items for the detail endpoint.
func (r *OrderRepository) FindWithItems(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByCustomer returns a customer's orders in store-default order, without
// line items.
func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	orders := []entity.Order{}
	err := r.DB.Where("customer_id = ?", customerID).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(id uint, status entity.OrderStatus) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// ---------------- Helpers ----------------

// GetMenuItemBasics loads the fields order creation prices against.
func (r *OrderRepository) GetMenuItemBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, price").First(&m, id).Error
	return m, err
}
