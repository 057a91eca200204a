package entity

import (
	"gorm.io/gorm"
)

// Order is immutable after creation except for Status. TotalPrice and the
// pickup fields are frozen at checkout and never track later restaurant or
// menu edits.
type Order struct {
	gorm.Model
	TotalPrice float64 `gorm:"not null" json:"total_price"`
	Status     string  `gorm:"default:pending" json:"status"`

	PickupTime     string `json:"pickup_time"`
	PickupLocation string `json:"pickup_location"`

	UserID uint `gorm:"not null;index" json:"user_id"` // orderer
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Messages   []Message   `gorm:"foreignKey:OrderID" json:"-"`
}
