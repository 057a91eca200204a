package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MessageRepository struct{ DB *gorm.DB }

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) ListByOrder(tx *gorm.DB, orderID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := tx.Where("order_id = ?", orderID).
		Preload("Sender").
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *MessageRepository) Create(msg *entity.Message) error {
	return r.DB.Create(msg).Error
}

// MarkReadForReceiver flips every unread message addressed to the user on
// this order.
func (r *MessageRepository) MarkReadForReceiver(tx *gorm.DB, orderID, userID uint) error {
	return tx.Model(&entity.Message{}).
		Where("order_id = ? AND receiver_id = ? AND is_read = ?", orderID, userID, false).
		Update("is_read", true).Error
}
