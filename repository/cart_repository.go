package repository

import (
	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindLinesByUser returns the user's cart lines in insertion order with the
// menu item and restaurant loaded for the grouped projection.
func (r *CartRepository) FindLinesByUser(userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Preload("Restaurant").
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

// FindLinesForCheckout loads the cart inside the checkout transaction with a
// row lock, so a racing cart write or second checkout for the same user
// serializes behind it. sqlite has no FOR UPDATE; its single-writer
// transaction lock covers the same ground.
func (r *CartRepository) FindLinesForCheckout(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var lines []entity.CartItem
	err := q.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

func (r *CartRepository) FindLineByID(id uint) (*entity.CartItem, error) {
	var line entity.CartItem
	if err := r.DB.First(&line, id).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) FindLineByUserAndItem(userID, menuItemID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) Create(line *entity.CartItem) error {
	return r.DB.Create(line).Error
}

func (r *CartRepository) Save(line *entity.CartItem) error {
	return r.DB.Save(line).Error
}

func (r *CartRepository) DeleteLine(id uint) error {
	return r.DB.Delete(&entity.CartItem{}, id).Error
}

func (r *CartRepository) DeleteAllForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
