package services

import (
	"context"
	"fmt"
	"math"

	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
)

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type RatingService struct {
	ratingRepo  repositories.RatingRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewRatingService(ratingRepo repositories.RatingRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		productRepo: productRepo,
	}
}

// Create records a score for the product. The title is derived from the score;
// whatever the caller sent for it is ignored.
func (s *RatingService) Create(ctx context.Context, userID, productID string, score int, comment string) (*models.Rating, error) {
	if score < 1 || score > 5 {
		return nil, apperrors.Validationf("score must be between 1 and 5")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NotFoundf("product not found")
	}

	rating := &models.Rating{
		UserID:    userID,
		ProductID: productID,
		Score:     score,
		Title:     models.TitleForScore(score),
		Comment:   comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	return rating, nil
}

func (s *RatingService) ListByProduct(ctx context.Context, productID string) ([]models.Rating, error) {
	return s.ratingRepo.FindByProduct(ctx, productID)
}

// Summary returns the average score rounded to one decimal place and the
// rating count. A product nobody rated yet has no summary.
func (s *RatingService) Summary(ctx context.Context, productID string) (*RatingSummary, error) {
	summary, err := s.ratingRepo.Summarize(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ratings: %w", err)
	}
	if summary.Count == 0 {
		return nil, apperrors.NotFoundf("no ratings found for this product")
	}
	return &RatingSummary{
		Average: math.Round(summary.Average*10) / 10,
		Count:   summary.Count,
	}, nil
}
