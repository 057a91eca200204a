package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"default:''" json:"description"`
	ImageURL    string  `gorm:"default:''" json:"image_url"`
	IsAvailable bool    `gorm:"default:true" json:"is_available"`

	RestaurantID uint       `gorm:"not null" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
