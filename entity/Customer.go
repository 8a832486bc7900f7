package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name        string `json:"name"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`

	Orders []Order `json:"-"`
}
