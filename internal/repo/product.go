package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/amribrahim/goshop/internal/models"
)

// ProductFilter mirrors the list endpoint's query parameters. Nil
// price bounds mean unbounded.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Order    string // "asc" | "desc", by creation time
	Offset   int
	Limit    int
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Preload("Category").
		Preload("Reviews").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) FindProductByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})

	if filter.Category != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("LOWER(categories.name) = LOWER(?)", filter.Category)
	}
	if filter.MinPrice != nil {
		q = q.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("products.price <= ?", *filter.MaxPrice)
	}

	order := "products.created_at ASC"
	if filter.Order == "desc" {
		order = "products.created_at DESC"
	}

	var products []models.Product
	err := q.Order(order).Offset(filter.Offset).Limit(filter.Limit).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts is the database fallback for keyword search when
// Elasticsearch is not wired. LOWER/LIKE keeps it portable across
// postgres and the sqlite test driver.
func (r *GormRepo) SearchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	pattern := "%" + keyword + "%"
	var products []models.Product
	err := r.DB.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) BestSellerProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).
		Order("sold DESC").
		Order("rating DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Save(product).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (r *GormRepo) ProductExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
