package services

import (
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{UserRepo: userRepo}
}

// Register creates an account with a bcrypt-hashed password.
func (s *AuthService) Register(username, password, displayName string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperr.Validation("Username and password are required")
	}

	count, err := s.UserRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if displayName == "" {
		displayName = "User"
	}
	user := &entity.User{
		Username:    username,
		Password:    string(hashed),
		DisplayName: displayName,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Wrong username and wrong password return the
// same error.
func (s *AuthService) Login(username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, apperr.Validation("Username and password are required")
	}

	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, apperr.ErrAuthRequired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.ErrAuthRequired
	}
	return user, nil
}

func (s *AuthService) UserByID(id uint) (*entity.User, error) {
	return s.UserRepo.FindByID(id)
}

type ProfileOut struct {
	ID          uint                `json:"id"`
	Username    string              `json:"username"`
	DisplayName string              `json:"display_name"`
	Restaurants []ProfileRestaurant `json:"restaurants"`
}

type ProfileRestaurant struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (s *AuthService) Profile(userID uint) (*ProfileOut, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	rests, err := s.UserRepo.FindRestaurantsByOwner(userID)
	if err != nil {
		return nil, err
	}

	out := &ProfileOut{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Restaurants: make([]ProfileRestaurant, 0, len(rests)),
	}
	for _, r := range rests {
		out.Restaurants = append(out.Restaurants, ProfileRestaurant{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (s *AuthService) UpdateDisplayName(userID uint, name string) error {
	return s.UserRepo.UpdateDisplayName(userID, name)
}
