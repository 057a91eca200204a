package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListActiveOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	owner := createUser(t, db, "owner")
	active := createRestaurant(t, db, owner.ID, "Open Shop")
	createMenuItem(t, db, active.ID, "X", 45)
	createMenuItem(t, db, active.ID, "Y", 50)

	closed := createRestaurant(t, db, owner.ID, "Closed Shop")
	require.NoError(t, db.Model(&entity.Restaurant{}).Where("id = ?", closed.ID).
		Update("is_active", false).Error)

	out, err := svc.List()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Open Shop", out[0].Name)
	assert.Equal(t, "owner", out[0].OwnerName)
	assert.Equal(t, 2, out[0].MenuCount)
}

func TestDetailNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	_, err := svc.Detail(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateMakesCallerOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))
	user := createUser(t, db, "anyone")

	id, err := svc.Create(user.ID, &CreateRestaurantIn{
		Name: "New Shop", OpenTime: "09:00", CloseTime: "17:00",
		Location: "Market", PickupTime: "12:00", PickupLocation: "Gate 2",
	})
	require.NoError(t, err)

	detail, err := svc.Detail(id)
	require.NoError(t, err)
	assert.Equal(t, user.ID, detail.UserID)
	assert.Equal(t, "anyone", detail.OwnerName)
}
