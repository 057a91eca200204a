package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	// free-form HH:MM strings, shown as-is
	OpenTime  string `gorm:"not null" json:"open_time"`
	CloseTime string `gorm:"not null" json:"close_time"`

	Location       string `gorm:"not null" json:"location"`
	PickupTime     string `gorm:"not null" json:"pickup_time"`
	PickupLocation string `gorm:"not null" json:"pickup_location"`
	ImageURL       string `gorm:"default:''" json:"image_url"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`

	UserID uint `gorm:"not null" json:"user_id"` // owner (users.id)
	User   User `json:"-"`

	MenuItems []MenuItem `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Orders    []Order    `json:"-"`
}
