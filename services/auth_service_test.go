package services

import (
	"testing"

	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	user, err := svc.Register("somchai", "secret123", "Somchai")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	// stored hashed, never the plaintext
	assert.NotEqual(t, "secret123", user.Password)

	got, err := svc.Login("somchai", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Register("somchai", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Login("somchai", "wrong")
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)
	_, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Register("somchai", "secret123", "")
	require.NoError(t, err)
	_, err = svc.Register("somchai", "another456", "")
	assert.True(t, apperr.IsValidation(err))
}

func TestProfileListsOwnedRestaurants(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	user, err := svc.Register("somchai", "secret123", "Somchai")
	require.NoError(t, err)
	createRestaurant(t, db, user.ID, "R1")
	createRestaurant(t, db, user.ID, "R2")

	out, err := svc.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Somchai", out.DisplayName)
	require.Len(t, out.Restaurants, 2)
	assert.Equal(t, "R1", out.Restaurants[0].Name)
}
