package service

import (
	"context"
	"errors"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amribrahim/goshop/internal/events"
	"github.com/amribrahim/goshop/internal/logging"
	"github.com/amribrahim/goshop/internal/models"
	"github.com/amribrahim/goshop/internal/repo"
	"github.com/amribrahim/goshop/internal/service/search"
	"github.com/amribrahim/goshop/internal/util"
)

const bestSellerCount = 3

type ProductService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

type CreateProductInput struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DiscountPercent float64   `json:"discount_percent"`
	Quantity        uint      `json:"quantity"`
	Image           string    `json:"image"`
	CategoryID      uuid.UUID `json:"category_id"`
}

type UpdateProductInput struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price"`
	DiscountPercent *float64 `json:"discount_percent"`
	Quantity        *uint    `json:"quantity"`
	Rating          *float64 `json:"rating"`
	Image           string   `json:"image"`
}

type ListProductsInput struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Order    string
	Page     int
	Limit    int
}

// Create upserts by product name: restocking an existing product adds
// to its quantity instead of making a duplicate row.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (product *models.Product, created bool, err error) {
	if in.Name == "" {
		return nil, false, E(ErrValidation, "Name is required")
	}
	if in.Price <= 0 {
		return nil, false, E(ErrValidation, "Price must be a positive number")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	existing, err := s.Repo.FindProductByName(ctx, in.Name)
	if err == nil {
		existing.Quantity += in.Quantity
		if err := s.Repo.SaveProduct(ctx, existing); err != nil {
			return nil, false, err
		}
		s.publish(ctx, map[string]any{
			"type":      "product_updated",
			"productID": existing.ID,
			"name":      existing.Name,
		})
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if _, err := s.Repo.FindCategoryByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, E(ErrNotFound, "Category not found")
		}
		return nil, false, err
	}

	newProduct := models.Product{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		DiscountPercent: in.DiscountPercent,
		Quantity:        in.Quantity,
		Sold:            0,
		Image:           in.Image,
		CategoryID:      in.CategoryID,
	}
	if err := s.Repo.CreateProduct(ctx, &newProduct); err != nil {
		return nil, false, err
	}

	s.publish(ctx, map[string]any{
		"type":      "product_created",
		"productID": newProduct.ID,
		"name":      newProduct.Name,
	})

	return &newProduct, true, nil
}

func (s *ProductService) List(ctx context.Context, in ListProductsInput) ([]models.Product, error) {
	offset, limit := util.Calculate(in.Page, in.Limit)

	order := "asc"
	if in.Order == "desc" {
		order = "desc"
	}

	return s.Repo.ListProducts(ctx, repo.ProductFilter{
		Category: in.Category,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Order:    order,
		Offset:   offset,
		Limit:    limit,
	})
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(ErrNotFound, "Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) BestSellers(ctx context.Context) ([]models.Product, error) {
	return s.Repo.BestSellerProducts(ctx, bestSellerCount)
}

func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountProducts(ctx)
}

// Search uses Elasticsearch when wired and the database otherwise.
func (s *ProductService) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	if keyword == "" {
		return nil, E(ErrValidation, "keyword is required")
	}

	if s.ES != nil {
		_, products, err := search.Products(ctx, s.ES, s.ESIndex, keyword, 0, util.DefaultPageSize)
		return products, err
	}

	return s.Repo.SearchProducts(ctx, keyword)
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, in UpdateProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.DiscountPercent != nil {
		product.DiscountPercent = *in.DiscountPercent
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Rating != nil {
		product.Rating = *in.Rating
	}
	if in.Image != "" {
		product.Image = in.Image
	}

	// Save with associations preloaded would try to upsert them too.
	product.Category = nil
	product.Reviews = nil
	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	return nil
}

func (s *ProductService) publish(ctx context.Context, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicProductEvents, eventKey(event), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
