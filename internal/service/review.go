package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amribrahim/goshop/internal/models"
	"github.com/amribrahim/goshop/internal/repo"
)

type ReviewService struct {
	Repo *repo.GormRepo
}

func (s *ReviewService) Create(ctx context.Context, productID, userID uuid.UUID, text string) (*models.Review, error) {
	if len(text) < 3 {
		return nil, E(ErrValidation, "Text must be at least 3 characters long")
	}

	exists, err := s.Repo.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, E(ErrNotFound, "Product not found")
	}

	review := models.Review{
		Text:      text,
		ProductID: productID,
		UserID:    userID,
	}
	if err := s.Repo.CreateReview(ctx, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	review, err := s.Repo.FindReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(ErrNotFound, "Review not found")
		}
		return nil, err
	}
	return review, nil
}

// Update is author-only.
func (s *ReviewService) Update(ctx context.Context, id, userID uuid.UUID, text string) (*models.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.UserID != userID {
		return nil, E(ErrUnauthorized, "You are not allowed to update this review")
	}

	review.Text = text
	if err := s.Repo.SaveReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete is allowed for the author or an admin.
func (s *ReviewService) Delete(ctx context.Context, id, userID uuid.UUID, role string) error {
	review, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if review.UserID != userID && role != models.RoleAdmin {
		return E(ErrUnauthorized, "You are not allowed to delete this review")
	}

	return s.Repo.DeleteReview(ctx, id)
}
