package entity

import (
	"gorm.io/gorm"
)

// CartItem is one (user, menu item) line awaiting checkout. At most one row
// exists per pair; repeated adds merge into the existing line. Price is not
// snapshotted here — checkout reads the current menu price.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	// copy of the menu item's restaurant, kept for grouping
	RestaurantID uint       `gorm:"not null" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	Quantity int    `gorm:"default:1" json:"quantity"`
	Note     string `gorm:"default:''" json:"note"`
}
