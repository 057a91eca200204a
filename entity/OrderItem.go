package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int     `gorm:"default:1" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"` // menu price snapshot at checkout
	Note     string  `gorm:"default:''" json:"note"`

	OrderID uint  `gorm:"not null" json:"order_id"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`
}
