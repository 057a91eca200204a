package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type MessageService struct {
	DB        *gorm.DB
	Repo      *repository.MessageRepository
	OrderRepo *repository.OrderRepository
}

func NewMessageService(db *gorm.DB, repo *repository.MessageRepository, orderRepo *repository.OrderRepository) *MessageService {
	return &MessageService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

// partyCheck loads the order and verifies the caller is the orderer or the
// restaurant owner.
func (s *MessageService) partyCheck(orderID, callerID uint) (*entity.Order, error) {
	o, err := s.OrderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != callerID && o.Restaurant.UserID != callerID {
		return nil, apperr.ErrForbidden
	}
	return o, nil
}

// Send posts a message on the order thread. The receiver is always the other
// party.
func (s *MessageService) Send(orderID, senderID uint, content string) (uint, error) {
	o, err := s.partyCheck(orderID, senderID)
	if err != nil {
		return 0, err
	}
	if content == "" {
		return 0, apperr.Validation("Message content is required")
	}

	receiverID := o.Restaurant.UserID
	if senderID != o.UserID {
		receiverID = o.UserID
	}

	msg := &entity.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		OrderID:    orderID,
		Content:    content,
	}
	if err := s.Repo.Create(msg); err != nil {
		return 0, err
	}
	return msg.ID, nil
}

type MessageOut struct {
	ID         uint   `json:"id"`
	SenderID   uint   `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
	IsMine     bool   `json:"is_mine"`
	IsRead     bool   `json:"is_read"`
}

// List returns the thread chronologically. Reading is a write: every message
// addressed to the caller is marked read in the same transaction, so a
// refetch shows is_read=true.
func (s *MessageService) List(orderID, callerID uint) ([]MessageOut, error) {
	if _, err := s.partyCheck(orderID, callerID); err != nil {
		return nil, err
	}

	var msgs []entity.Message
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		msgs, err = s.Repo.ListByOrder(tx, orderID)
		if err != nil {
			return err
		}
		return s.Repo.MarkReadForReceiver(tx, orderID, callerID)
	})
	if err != nil {
		return nil, err
	}

	out := make([]MessageOut, 0, len(msgs))
	for _, m := range msgs {
		isRead := m.IsRead
		if m.ReceiverID == callerID {
			isRead = true // just marked
		}
		out = append(out, MessageOut{
			ID:         m.ID,
			SenderID:   m.SenderID,
			SenderName: m.Sender.DisplayName,
			Content:    m.Content,
			CreatedAt:  m.CreatedAt.Format("2006-01-02T15:04:05"),
			IsMine:     m.SenderID == callerID,
			IsRead:     isRead,
		})
	}
	return out, nil
}

// MarkRead is the explicit variant of the side effect List performs.
func (s *MessageService) MarkRead(orderID, callerID uint) error {
	if _, err := s.partyCheck(orderID, callerID); err != nil {
		return err
	}
	return s.Repo.MarkReadForReceiver(s.DB, orderID, callerID)
}
