package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amribrahim/goshop/internal/events"
	"github.com/amribrahim/goshop/internal/logging"
	"github.com/amribrahim/goshop/internal/models"
	"github.com/amribrahim/goshop/internal/repo"
)

const (
	UpdateCartDecrement = "DECREMENT"
	UpdateCartRemove    = "REMOVE"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

type UpdateCartInput struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

func (s *CartService) ListCarts(ctx context.Context) ([]models.Cart, error) {
	return s.Repo.ListCarts(ctx)
}

func (s *CartService) GetUserCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.FindCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(ErrNotFound, "Cart not found")
		}
		return nil, err
	}
	return cart, nil
}

// AddItem verifies the product before touching the cart, then runs the
// cart upsert and the item create-or-increment in one transaction.
// Adding a product already in the cart sums quantities; it never makes
// a second row.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.Cart, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add")

	if quantity <= 0 {
		return nil, E(ErrValidation, "Quantity must be a positive number")
	}

	exists, err := s.Repo.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, E(ErrNotFound, "Product not found")
	}

	cart, err := s.Repo.AddCartItem(ctx, userID, productID, uint(quantity))
	if err != nil {
		l.Error("add_item_error", "error", err)
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":      "cart_item_added",
		"userID":    userID,
		"productID": productID,
		"quantity":  quantity,
	})

	return cart, nil
}

// Update dispatches on the request type. DECREMENT lowers an item's
// quantity, deleting it when the amount reaches what is left; REMOVE
// deletes unconditionally. Anything else is rejected before any store
// access.
func (s *CartService) Update(ctx context.Context, itemID, userID uuid.UUID, in UpdateCartInput) (*models.Cart, error) {
	cart, err := s.GetUserCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch in.Type {
	case UpdateCartDecrement:
		if in.Quantity == 0 {
			return nil, E(ErrValidation, "Quantity is required")
		}
		if in.Quantity < 0 {
			return nil, E(ErrValidation, "Quantity must be a positive number")
		}
		if _, _, err := s.Repo.DecreaseCartItem(ctx, cart.ID, itemID, uint(in.Quantity)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, E(ErrNotFound, "Cart item not found")
			}
			return nil, err
		}
	case UpdateCartRemove:
		if _, err := s.Repo.RemoveCartItem(ctx, cart.ID, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, E(ErrNotFound, "Cart item not found")
			}
			return nil, err
		}
	default:
		return nil, E(ErrValidation, "Invalid update type")
	}

	s.publish(ctx, map[string]any{
		"type":       "cart_updated",
		"userID":     userID,
		"cartItemID": itemID,
		"updateType": in.Type,
	})

	return s.GetUserCart(ctx, userID)
}

func (s *CartService) publish(ctx context.Context, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicCartEvents, eventKey(event), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
