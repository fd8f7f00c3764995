package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amribrahim/goshop/internal/models"
)

// UpsertCart fetches the user's cart, creating it on first use. The
// uniqueIndex on user_id keeps concurrent first adds from producing
// two carts.
func (r *GormRepo) UpsertCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Attrs(models.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) FindCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) ListCarts(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.DB.WithContext(ctx).Preload("Items").Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// AddCartItem runs the whole add flow in one transaction: upsert the
// cart, then increment the (cart, product) row if it exists or create
// it. The increment is a single conditional UPDATE, so two concurrent
// adds of the same product both land instead of last-write-winning.
func (r *GormRepo) AddCartItem(ctx context.Context, userID, productID uuid.UUID, quantity uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Attrs(models.Cart{UserID: userID}).
			FirstOrCreate(&cart).Error; err != nil {
			return err
		}

		res := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Update("quantity", gorm.Expr("quantity + ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			item := models.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Items").First(&cart, "id = ?", cart.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// DecreaseCartItem applies quantity := quantity - amount, deleting the
// row when the amount meets or exceeds what is left. The decrement is
// a conditional single-statement UPDATE guarded by quantity > amount,
// so concurrent decrements serialize on the row instead of acting on a
// stale snapshot. Returns gorm.ErrRecordNotFound when the item does
// not belong to the cart.
func (r *GormRepo) DecreaseCartItem(ctx context.Context, cartID, itemID uuid.UUID, amount uint) (deleted bool, item *models.CartItem, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("id = ? AND cart_id = ? AND quantity > ?", itemID, cartID, amount).
			Update("quantity", gorm.Expr("quantity - ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			var updated models.CartItem
			if err := tx.First(&updated, "id = ?", itemID).Error; err != nil {
				return err
			}
			item = &updated
			return nil
		}

		// Either the row is absent or amount >= quantity.
		var existing models.CartItem
		if err := tx.Where("id = ? AND cart_id = ?", itemID, cartID).First(&existing).Error; err != nil {
			return err
		}
		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		deleted = true
		item = &existing
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return deleted, item, nil
}

// RemoveCartItem deletes the row unconditionally; deleting an absent
// item is an error, not a no-op, to surface misuse early.
func (r *GormRepo) RemoveCartItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
