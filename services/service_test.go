package services

import (
	"fmt"
	"testing"

	"backend/configs"
	"backend/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database per test. The shared cache keeps
// all pooled connections on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x", DisplayName: username}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createRestaurant(t *testing.T, db *gorm.DB, ownerID uint, name string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		UserID: ownerID, Name: name,
		OpenTime: "10:00", CloseTime: "14:00",
		Location: "Market", PickupTime: "12:30", PickupLocation: "Gate 1",
		IsActive: true,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func createMenuItem(t *testing.T, db *gorm.DB, restID uint, name string, price float64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{RestaurantID: restID, Name: name, Price: price, IsAvailable: true}
	require.NoError(t, db.Create(m).Error)
	return m
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
