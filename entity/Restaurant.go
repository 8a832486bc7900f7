package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string `json:"name"`
	Location string `json:"location"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
