package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func TestAddMergesDuplicateLines(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "buyer")
	rest := createRestaurant(t, db, createUser(t, db, "owner").ID, "R1")
	item := createMenuItem(t, db, rest.ID, "Green Curry Rice", 45)

	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 2, Note: "less spicy"}))
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 3}))

	var lines []entity.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	// empty note on the second add keeps the first one
	assert.Equal(t, "less spicy", lines[0].Note)
	assert.Equal(t, rest.ID, lines[0].RestaurantID)

	// a non-empty note replaces
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Note: "no chili"}))
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 6, lines[0].Quantity) // quantity defaults to 1
	assert.Equal(t, "no chili", lines[0].Note)
}

func TestAddMissingMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "buyer")

	err := svc.Add(user.ID, &AddToCartIn{MenuItemID: 999})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &entity.CartItem{}))
}

func TestUpdateLineQuantityZeroDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "buyer")
	rest := createRestaurant(t, db, createUser(t, db, "owner").ID, "R1")
	item := createMenuItem(t, db, rest.ID, "Noodles", 50)
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 2}))

	var line entity.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&line).Error)

	zero := 0
	require.NoError(t, svc.UpdateLine(user.ID, line.ID, &UpdateCartIn{Quantity: &zero}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.CartItem{}))
}

func TestUpdateLineNoteAndQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "buyer")
	rest := createRestaurant(t, db, createUser(t, db, "owner").ID, "R1")
	item := createMenuItem(t, db, rest.ID, "Noodles", 50)
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID, Note: "extra"}))

	var line entity.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&line).Error)

	qty := 4
	empty := ""
	require.NoError(t, svc.UpdateLine(user.ID, line.ID, &UpdateCartIn{Quantity: &qty, Note: &empty}))

	require.NoError(t, db.First(&line, line.ID).Error)
	assert.Equal(t, 4, line.Quantity)
	// unlike Add, an explicit empty note clears
	assert.Equal(t, "", line.Note)
}

func TestUpdateLineForbiddenForOtherUser(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "buyer")
	other := createUser(t, db, "intruder")
	rest := createRestaurant(t, db, createUser(t, db, "owner").ID, "R1")
	item := createMenuItem(t, db, rest.ID, "Noodles", 50)
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID}))

	var line entity.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&line).Error)

	qty := 9
	assert.ErrorIs(t, svc.UpdateLine(other.ID, line.ID, &UpdateCartIn{Quantity: &qty}), apperr.ErrForbidden)
	assert.ErrorIs(t, svc.RemoveLine(other.ID, line.ID), apperr.ErrForbidden)
}

func TestGetGroupsByRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "buyer")
	owner := createUser(t, db, "owner")
	r1 := createRestaurant(t, db, owner.ID, "R1")
	r2 := createRestaurant(t, db, owner.ID, "R2")
	x := createMenuItem(t, db, r1.ID, "X", 45)
	y := createMenuItem(t, db, r1.ID, "Y", 50)
	z := createMenuItem(t, db, r2.ID, "Z", 40)

	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: x.ID, Quantity: 2}))
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: y.ID, Quantity: 1}))
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: z.ID, Quantity: 1}))

	out, err := svc.Get(user.ID)
	require.NoError(t, err)

	require.Len(t, out.Restaurants, 2)
	assert.Equal(t, "R1", out.Restaurants[0].Restaurant.Name)
	assert.Equal(t, "R2", out.Restaurants[1].Restaurant.Name)
	assert.Equal(t, 140.0, out.Restaurants[0].Subtotal)
	assert.Equal(t, 40.0, out.Restaurants[1].Subtotal)
	assert.Equal(t, 180.0, out.Total)
	// line count, not unit count
	assert.Equal(t, 3, out.ItemCount)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "buyer")
	rest := createRestaurant(t, db, createUser(t, db, "owner").ID, "R1")
	item := createMenuItem(t, db, rest.ID, "Noodles", 50)
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{MenuItemID: item.ID}))

	require.NoError(t, svc.Clear(user.ID))
	out, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, out.ItemCount)
	assert.Empty(t, out.Restaurants)
}
