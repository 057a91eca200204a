package entity

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	Content string `gorm:"not null" json:"content"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`

	SenderID uint `gorm:"not null" json:"sender_id"`
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`

	ReceiverID uint `gorm:"not null" json:"receiver_id"`
	Receiver   User `gorm:"foreignKey:ReceiverID" json:"-"`

	OrderID uint  `gorm:"index" json:"order_id"`
	Order   Order `json:"-"`
}
