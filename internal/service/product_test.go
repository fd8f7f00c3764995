package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/amribrahim/goshop/internal/models"
)

func TestCreateProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	category := models.Category{Name: "Electronics"}
	require.NoError(t, r.DB.Create(&category).Error)

	product, created, err := svc.Create(ctx, CreateProductInput{
		Name:       "Mechanical Keyboard",
		Price:      120,
		Quantity:   5,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	require.True(t, created)
	require.EqualValues(t, 5, product.Quantity)
	require.EqualValues(t, 0, product.Sold)
}

func TestCreateProductRestocksExisting(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	category := models.Category{Name: "Electronics"}
	require.NoError(t, r.DB.Create(&category).Error)

	in := CreateProductInput{Name: "Wireless Mouse", Price: 40, Quantity: 5, CategoryID: category.ID}
	_, created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.True(t, created)

	in.Quantity = 3
	product, created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.False(t, created)
	require.EqualValues(t, 8, product.Quantity)

	var count int64
	require.NoError(t, r.DB.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}

	_, _, err := svc.Create(context.Background(), CreateProductInput{
		Name:       "Orphan",
		Price:      10,
		CategoryID: uuid.New(),
	})
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Category not found")
}

func TestCreateProductValidation(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, _, err := svc.Create(ctx, CreateProductInput{Price: 10})
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Create(ctx, CreateProductInput{Name: "Freebie", Price: 0})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()
	product := seedProduct(t, r, "monitor")

	price := 250.0
	quantity := uint(2)
	updated, err := svc.Update(ctx, product.ID, UpdateProductInput{
		Description: "4k panel",
		Price:       &price,
		Quantity:    &quantity,
	})
	require.NoError(t, err)
	require.Equal(t, "monitor", updated.Name)
	require.Equal(t, "4k panel", updated.Description)
	require.Equal(t, 250.0, updated.Price)
	require.EqualValues(t, 2, updated.Quantity)
}

func TestGetProductNotFound(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualError(t, err, "Product not found")
}

func TestSearchRequiresKeyword(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}

	_, err := svc.Search(context.Background(), "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestSearchFallsBackToDatabase(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()
	seedProduct(t, r, "gaming keyboard")

	products, err := svc.Search(ctx, "keyboard")
	require.NoError(t, err)
	require.Len(t, products, 1)
}
