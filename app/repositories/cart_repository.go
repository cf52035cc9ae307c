package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/grabpoint/api/app/models"
)

type CartRepositoryImpl interface {
	Create(ctx context.Context, item *models.CartItem) error
	Save(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, item *models.CartItem) error
	FindOwned(ctx context.Context, userID, id string) (*models.CartItem, error)
	FindActiveByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error)
	GetActiveByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	GetActiveForUpdate(ctx context.Context, tx *gorm.DB, userID string) ([]models.CartItem, error)
	MarkCheckedOut(ctx context.Context, tx *gorm.DB, ids []string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) Save(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) Delete(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *cartRepository) FindOwned(ctx context.Context, userID, id string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&item, "id = ? AND user_id = ? AND is_checked_out = ?", id, userID, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) FindActiveByUserAndProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		First(&item, "user_id = ? AND product_id = ? AND is_checked_out = ?", userID, productID, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetActiveByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Where("user_id = ? AND is_checked_out = ?", userID, false).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetActiveForUpdate reads the caller's active cart rows inside tx holding
// row locks, so a concurrent checkout blocks until this transaction commits
// and then sees the rows already checked out. sqlite has no FOR UPDATE; its
// single-writer lock already serializes the transaction.
func (r *cartRepository) GetActiveForUpdate(ctx context.Context, tx *gorm.DB, userID string) ([]models.CartItem, error) {
	q := tx.WithContext(ctx)
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var items []models.CartItem
	err := q.Where("user_id = ? AND is_checked_out = ?", userID, false).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) MarkCheckedOut(ctx context.Context, tx *gorm.DB, ids []string) error {
	return tx.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"is_checked_out": true,
			"updated_at":     time.Now(),
		}).Error
}
