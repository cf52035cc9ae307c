package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/grabpoint/api/app/models"
)

type RatingSummary struct {
	Average float64
	Count   int64
}

type RatingRepositoryImpl interface {
	Create(ctx context.Context, rating *models.Rating) error
	FindByProduct(ctx context.Context, productID string) ([]models.Rating, error)
	Summarize(ctx context.Context, productID string) (*RatingSummary, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepositoryImpl {
	return &ratingRepository{db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) FindByProduct(ctx context.Context, productID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) Summarize(ctx context.Context, productID string) (*RatingSummary, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("AVG(score) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &RatingSummary{Average: row.Average, Count: row.Count}, nil
}
