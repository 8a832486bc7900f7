package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TotalPrice float64     `json:"totalPrice"`
	Status     OrderStatus `json:"status"`

	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"` // preload only for order detail
}
