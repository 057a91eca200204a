package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type RestaurantOut struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	OwnerName      string `json:"owner_name"`
	Name           string `json:"name"`
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	Location       string `json:"location"`
	PickupTime     string `json:"pickup_time"`
	PickupLocation string `json:"pickup_location"`
	ImageURL       string `json:"image_url"`
	MenuCount      int    `json:"menu_count,omitempty"`
}

func ownerName(u entity.User) string {
	if u.ID == 0 {
		return "Unknown"
	}
	return u.DisplayName
}

// List returns every active restaurant with its owner name and menu count.
func (s *RestaurantService) List() ([]RestaurantOut, error) {
	rests, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}

	out := make([]RestaurantOut, 0, len(rests))
	for _, r := range rests {
		out = append(out, RestaurantOut{
			ID:             r.ID,
			UserID:         r.UserID,
			OwnerName:      ownerName(r.User),
			Name:           r.Name,
			OpenTime:       r.OpenTime,
			CloseTime:      r.CloseTime,
			Location:       r.Location,
			PickupTime:     r.PickupTime,
			PickupLocation: r.PickupLocation,
			ImageURL:       r.ImageURL,
			MenuCount:      len(r.MenuItems),
		})
	}
	return out, nil
}

func (s *RestaurantService) Detail(id uint) (*RestaurantOut, error) {
	r, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &RestaurantOut{
		ID:             r.ID,
		UserID:         r.UserID,
		OwnerName:      ownerName(r.User),
		Name:           r.Name,
		OpenTime:       r.OpenTime,
		CloseTime:      r.CloseTime,
		Location:       r.Location,
		PickupTime:     r.PickupTime,
		PickupLocation: r.PickupLocation,
		ImageURL:       r.ImageURL,
	}, nil
}

type CreateRestaurantIn struct {
	Name           string `json:"name" binding:"required"`
	OpenTime       string `json:"open_time" binding:"required"`
	CloseTime      string `json:"close_time" binding:"required"`
	Location       string `json:"location" binding:"required"`
	PickupTime     string `json:"pickup_time" binding:"required"`
	PickupLocation string `json:"pickup_location" binding:"required"`
	ImageURL       string `json:"image_url"`
}

// Create makes the caller the owner. Any authenticated user may open a
// restaurant.
func (s *RestaurantService) Create(userID uint, in *CreateRestaurantIn) (uint, error) {
	rest := &entity.Restaurant{
		UserID:         userID,
		Name:           in.Name,
		OpenTime:       in.OpenTime,
		CloseTime:      in.CloseTime,
		Location:       in.Location,
		PickupTime:     in.PickupTime,
		PickupLocation: in.PickupLocation,
		ImageURL:       in.ImageURL,
		IsActive:       true,
	}
	if err := s.Repo.Create(rest); err != nil {
		return 0, err
	}
	return rest.ID, nil
}

// RequireOwner returns ErrForbidden unless the user owns the restaurant.
func (s *RestaurantService) RequireOwner(restID, userID uint) error {
	ok, err := s.Repo.IsOwnedBy(restID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}
	return nil
}
