package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amribrahim/goshop/internal/models"
	"github.com/amribrahim/goshop/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return repo.New(db)
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string) *models.Product {
	category := models.Category{Name: "category-" + name}
	require.NoError(t, r.DB.Create(&category).Error)

	product := models.Product{Name: name, Price: 19.99, Quantity: 10, CategoryID: category.ID}
	require.NoError(t, r.DB.Create(&product).Error)
	return &product
}
