package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/amribrahim/goshop/internal/models"
)

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	product := seedProduct(t, r, "keyboard")

	for _, quantity := range []int{0, -3} {
		_, err := svc.AddItem(ctx, uuid.New(), product.ID, quantity)
		require.ErrorIs(t, err, ErrValidation)
		require.EqualError(t, err, "Quantity must be a positive number")
	}

	var count int64
	require.NoError(t, r.DB.Model(&models.Cart{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestAddItemUnknownProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()

	_, err := svc.AddItem(ctx, uuid.New(), uuid.New(), 1)
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Product not found")

	var count int64
	require.NoError(t, r.DB.Model(&models.Cart{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestAddItemTwiceSumsInOneRow(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	product := seedProduct(t, r, "mouse")
	userID := uuid.New()

	_, err := svc.AddItem(ctx, userID, product.ID, 2)
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, userID, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.EqualValues(t, 5, cart.Items[0].Quantity)
}

func TestUpdateDecrement(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	product := seedProduct(t, r, "monitor")
	userID := uuid.New()

	cart, err := svc.AddItem(ctx, userID, product.ID, 5)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.Update(ctx, itemID, userID, UpdateCartInput{Type: UpdateCartDecrement, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.EqualValues(t, 3, cart.Items[0].Quantity)

	cart, err = svc.Update(ctx, itemID, userID, UpdateCartInput{Type: UpdateCartDecrement, Quantity: 3})
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestUpdateDecrementRequiresQuantity(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	product := seedProduct(t, r, "webcam")
	userID := uuid.New()

	cart, err := svc.AddItem(ctx, userID, product.ID, 2)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	_, err = svc.Update(ctx, itemID, userID, UpdateCartInput{Type: UpdateCartDecrement})
	require.ErrorIs(t, err, ErrValidation)
	require.EqualError(t, err, "Quantity is required")

	_, err = svc.Update(ctx, itemID, userID, UpdateCartInput{Type: UpdateCartDecrement, Quantity: -1})
	require.ErrorIs(t, err, ErrValidation)
	require.EqualError(t, err, "Quantity must be a positive number")

	// Rejected requests leave the item untouched.
	cart, err = svc.GetUserCart(ctx, userID)
	require.NoError(t, err)
	require.EqualValues(t, 2, cart.Items[0].Quantity)
}

func TestUpdateRemove(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	product := seedProduct(t, r, "headset")
	userID := uuid.New()

	cart, err := svc.AddItem(ctx, userID, product.ID, 9)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.Update(ctx, itemID, userID, UpdateCartInput{Type: UpdateCartRemove})
	require.NoError(t, err)
	require.Empty(t, cart.Items)

	_, err = svc.Update(ctx, itemID, userID, UpdateCartInput{Type: UpdateCartRemove})
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Cart item not found")
}

func TestUpdateInvalidType(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	product := seedProduct(t, r, "speaker")
	userID := uuid.New()

	cart, err := svc.AddItem(ctx, userID, product.ID, 1)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	_, err = svc.Update(ctx, itemID, userID, UpdateCartInput{Type: "INCREMENT", Quantity: 1})
	require.ErrorIs(t, err, ErrValidation)
	require.EqualError(t, err, "Invalid update type")
}

func TestUpdateMissingItem(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	product := seedProduct(t, r, "cable")
	userID := uuid.New()

	_, err := svc.AddItem(ctx, userID, product.ID, 1)
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.New(), userID, UpdateCartInput{Type: UpdateCartDecrement, Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Cart item not found")
}

func TestGetUserCartNotFound(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	_, err := svc.GetUserCart(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Cart not found")
}
