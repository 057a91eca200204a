package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

type MenuItemOut struct {
	ID           uint    `json:"id"`
	RestaurantID uint    `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
}

type MenuOut struct {
	Restaurant struct {
		ID             uint   `json:"id"`
		Name           string `json:"name"`
		PickupTime     string `json:"pickup_time"`
		PickupLocation string `json:"pickup_location"`
	} `json:"restaurant"`
	Menu []MenuItemOut `json:"menu"`
}

// ListForRestaurant returns the restaurant summary plus available items only.
func (s *MenuService) ListForRestaurant(restID uint) (*MenuOut, error) {
	rest, err := s.RestRepo.FindByID(restID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListAvailableByRestaurant(restID)
	if err != nil {
		return nil, err
	}

	out := &MenuOut{Menu: make([]MenuItemOut, 0, len(items))}
	out.Restaurant.ID = rest.ID
	out.Restaurant.Name = rest.Name
	out.Restaurant.PickupTime = rest.PickupTime
	out.Restaurant.PickupLocation = rest.PickupLocation
	for _, it := range items {
		out.Menu = append(out.Menu, MenuItemOut{
			ID:           it.ID,
			RestaurantID: it.RestaurantID,
			Name:         it.Name,
			Price:        it.Price,
			Description:  it.Description,
			ImageURL:     it.ImageURL,
		})
	}
	return out, nil
}

type AddMenuItemIn struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// AddItem is restricted to the restaurant owner.
func (s *MenuService) AddItem(restID, userID uint, in *AddMenuItemIn) (uint, error) {
	rest, err := s.RestRepo.FindByID(restID)
	if err != nil {
		return 0, err
	}
	if rest.UserID != userID {
		return 0, apperr.ErrForbidden
	}
	if *in.Price < 0 {
		return 0, apperr.Validation("Price must not be negative")
	}

	item := &entity.MenuItem{
		RestaurantID: restID,
		Name:         in.Name,
		Price:        *in.Price,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		IsAvailable:  true,
	}
	if err := s.Repo.Create(item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

type UpdateMenuItemIn struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

// UpdateItem partially updates an item; owner only.
func (s *MenuService) UpdateItem(restID, itemID, userID uint, in *UpdateMenuItemIn) error {
	rest, err := s.RestRepo.FindByID(restID)
	if err != nil {
		return err
	}
	if rest.UserID != userID {
		return apperr.ErrForbidden
	}

	item, err := s.Repo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item.RestaurantID != restID {
		return apperr.ErrNotFound
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return apperr.Validation("Price must not be negative")
		}
		fields["price"] = *in.Price
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.IsAvailable != nil {
		fields["is_available"] = *in.IsAvailable
	}
	if len(fields) == 0 {
		return nil
	}
	return s.Repo.Updates(itemID, fields)
}
