package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// RestaurantRevenue sums totalPrice across every order of the restaurant,
// whatever its status. Zero when there are no orders.
func (r *ReportRepository) RestaurantRevenue(restID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ?", restID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

type MenuItemSales struct {
	MenuItemID    uint `json:"menuItemId"`
	TotalQuantity int  `json:"totalQuantity"`
}

// TopMenuItems groups line items by menu item and sums quantities. Ties fall
// in store-default order (non-deterministic).
func (r *ReportRepository) TopMenuItems(limit int) ([]MenuItemSales, error) {
	rows := []MenuItemSales{}
	err := r.DB.Model(&entity.OrderItem{}).
		Select("menu_item_id, SUM(quantity) AS total_quantity").
		Group("menu_item_id").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

type CustomerOrderCount struct {
	CustomerID  uint
	TotalOrders int64
}

// TopCustomerGroups groups orders by customer and counts them. Ties fall in
// store-default order (non-deterministic).
func (r *ReportRepository) TopCustomerGroups(limit int) ([]CustomerOrderCount, error) {
	var rows []CustomerOrderCount
	err := r.DB.Model(&entity.Order{}).
		Select("customer_id, COUNT(id) AS total_orders").
		Group("customer_id").
		Order("total_orders DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
