package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	Repo     *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(repo *repository.CartRepository, menuRepo *repository.MenuRepository) *CartService {
	return &CartService{Repo: repo, MenuRepo: menuRepo}
}

type CartItemOut struct {
	ID         uint    `json:"id"`
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Note       string  `json:"note"`
	Total      float64 `json:"total"`
}

type CartGroupOut struct {
	Restaurant struct {
		ID             uint   `json:"id"`
		Name           string `json:"name"`
		PickupTime     string `json:"pickup_time"`
		PickupLocation string `json:"pickup_location"`
	} `json:"restaurant"`
	Items    []CartItemOut `json:"items"`
	Subtotal float64       `json:"subtotal"`
}

type CartOut struct {
	Restaurants []CartGroupOut `json:"restaurants"`
	Total       float64        `json:"total"`
	ItemCount   int            `json:"item_count"` // line count, not unit count
}

// Get groups the user's lines by restaurant in first-seen order and computes
// the presentation aggregates. Nothing here is stored; totals always use the
// current menu price.
func (s *CartService) Get(userID uint) (*CartOut, error) {
	lines, err := s.Repo.FindLinesByUser(userID)
	if err != nil {
		return nil, err
	}

	out := &CartOut{Restaurants: []CartGroupOut{}, ItemCount: len(lines)}
	index := map[uint]int{}
	for _, line := range lines {
		i, seen := index[line.RestaurantID]
		if !seen {
			var g CartGroupOut
			g.Restaurant.ID = line.Restaurant.ID
			g.Restaurant.Name = line.Restaurant.Name
			g.Restaurant.PickupTime = line.Restaurant.PickupTime
			g.Restaurant.PickupLocation = line.Restaurant.PickupLocation
			g.Items = []CartItemOut{}
			out.Restaurants = append(out.Restaurants, g)
			i = len(out.Restaurants) - 1
			index[line.RestaurantID] = i
		}

		item := CartItemOut{
			ID:         line.ID,
			MenuItemID: line.MenuItemID,
			Name:       line.MenuItem.Name,
			Price:      line.MenuItem.Price,
			Quantity:   line.Quantity,
			Note:       line.Note,
			Total:      line.MenuItem.Price * float64(line.Quantity),
		}
		out.Restaurants[i].Items = append(out.Restaurants[i].Items, item)
		out.Restaurants[i].Subtotal += item.Total
		out.Total += item.Total
	}
	return out, nil
}

type AddToCartIn struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note"`
}

// Add merges into an existing (user, item) line when one exists: quantity is
// incremented, the note replaced only when a non-empty one is supplied.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	menuItem, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	existing, err := s.Repo.FindLineByUserAndItem(userID, in.MenuItemID)
	if err == nil {
		existing.Quantity += in.Quantity
		if in.Note != "" {
			existing.Note = in.Note
		}
		return s.Repo.Save(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	line := &entity.CartItem{
		UserID:       userID,
		MenuItemID:   in.MenuItemID,
		RestaurantID: menuItem.RestaurantID,
		Quantity:     in.Quantity,
		Note:         in.Note,
	}
	return s.Repo.Create(line)
}

type UpdateCartIn struct {
	Quantity *int    `json:"quantity"`
	Note     *string `json:"note"`
}

// UpdateLine is presence-sensitive: an absent field is left alone, a note set
// to "" clears it, and quantity dropping to 0 or below deletes the line.
func (s *CartService) UpdateLine(userID, lineID uint, in *UpdateCartIn) error {
	line, err := s.Repo.FindLineByID(lineID)
	if err != nil {
		return err
	}
	if line.UserID != userID {
		return apperr.ErrForbidden
	}

	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return s.Repo.DeleteLine(line.ID)
		}
		line.Quantity = *in.Quantity
	}
	if in.Note != nil {
		line.Note = *in.Note
	}
	return s.Repo.Save(line)
}

func (s *CartService) RemoveLine(userID, lineID uint) error {
	line, err := s.Repo.FindLineByID(lineID)
	if err != nil {
		return err
	}
	if line.UserID != userID {
		return apperr.ErrForbidden
	}
	return s.Repo.DeleteLine(line.ID)
}

func (s *CartService) Clear(userID uint) error {
	return s.Repo.DeleteAllForUser(s.Repo.DB, userID)
}
