package configs

import (
	"log/slog"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemo fills an empty database with the demo accounts, restaurants and
// menus the frontend expects. Runs once; a non-empty users table skips it.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []struct {
		Username, Password, DisplayName string
	}{
		{"user1", "password1", "Somchai"},
		{"user2", "password2", "Somying"},
		{"user3", "password3", "Somsak"},
		{"user4", "password4", "Somsri"},
		{"user5", "password5", "Sompong"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{Username: u.Username, Password: string(hash), DisplayName: u.DisplayName}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	restaurants := []entity.Restaurant{
		{
			UserID: 1, Name: "Pa Maew Curry Rice",
			OpenTime: "10:00", CloseTime: "14:00",
			Location: "University Market", PickupTime: "12:30", PickupLocation: "IT Building entrance",
			ImageURL: "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=400",
			IsActive: true,
		},
		{
			UserID: 2, Name: "Uncle Ped Noodles",
			OpenTime: "08:00", CloseTime: "15:00",
			Location: "School front gate", PickupTime: "11:30", PickupLocation: "Building B parking lot",
			ImageURL: "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400",
			IsActive: true,
		},
		{
			UserID: 3, Name: "Isaan Kitchen Somtum",
			OpenTime: "09:00", CloseTime: "20:00",
			Location: "Phahonyothin Road", PickupTime: "18:00", PickupLocation: "Dormitory A",
			ImageURL: "https://images.unsplash.com/photo-1562565652-a0d8f0c59eb4?w=400",
			IsActive: true,
		},
	}
	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}

	menus := []entity.MenuItem{
		{RestaurantID: 1, Name: "Green Curry Rice", Price: 45, Description: "Chicken green curry over steamed rice", IsAvailable: true},
		{RestaurantID: 1, Name: "Basil Stir-fry Rice", Price: 50, Description: "Minced pork basil with fried egg", IsAvailable: true},
		{RestaurantID: 1, Name: "Omelette Rice", Price: 35, Description: "Pork omelette on rice", IsAvailable: true},
		{RestaurantID: 1, Name: "Garlic Pork Rice", Price: 55, Description: "Crispy garlic fried pork", IsAvailable: true},

		{RestaurantID: 2, Name: "Stewed Pork Noodles", Price: 50, Description: "Clear broth, tender stewed pork", IsAvailable: true},
		{RestaurantID: 2, Name: "Tom Yum Noodles", Price: 55, Description: "Hot and sour", IsAvailable: true},
		{RestaurantID: 2, Name: "Dry Egg Noodles", Price: 45, Description: "Egg noodles with red pork", IsAvailable: true},
		{RestaurantID: 2, Name: "Wonton Soup", Price: 40, Description: "Fresh pork wontons", IsAvailable: true},

		{RestaurantID: 3, Name: "Somtum Thai", Price: 40, Description: "Fresh papaya salad", IsAvailable: true},
		{RestaurantID: 3, Name: "Somtum Pu Plara", Price: 50, Description: "With crab and fermented fish", IsAvailable: true},
		{RestaurantID: 3, Name: "Grilled Chicken", Price: 80, Description: "Half grilled chicken", IsAvailable: true},
		{RestaurantID: 3, Name: "Larb Moo", Price: 60, Description: "Spicy minced pork salad", IsAvailable: true},
	}
	for i := range menus {
		if err := db.Create(&menus[i]).Error; err != nil {
			return err
		}
	}

	slog.Info("database seeded with demo data")
	return nil
}
