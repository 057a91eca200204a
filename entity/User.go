package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Password    string `json:"-"`
	DisplayName string `gorm:"default:User" json:"display_name"`

	// Relations — preload only when needed
	Restaurants []Restaurant `gorm:"foreignKey:UserID" json:"-"`
	CartItems   []CartItem   `json:"-"`
	Orders      []Order      `json:"-"`

	MessagesSent     []Message `gorm:"foreignKey:SenderID" json:"-"`
	MessagesReceived []Message `gorm:"foreignKey:ReceiverID" json:"-"`
}
