package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/grabpoint/api/app/models"
)

type PrintOrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.PrintOrder) error
	CreateFiles(ctx context.Context, tx *gorm.DB, files []models.PrintOrderFile) error
	GetByID(ctx context.Context, id string) (*models.PrintOrder, error)
	FindByUserID(ctx context.Context, userID string) ([]models.PrintOrder, error)
	GetAll(ctx context.Context) ([]models.PrintOrder, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type gormPrintOrderRepository struct {
	db *gorm.DB
}

func NewPrintOrderRepository(db *gorm.DB) PrintOrderRepository {
	return &gormPrintOrderRepository{db: db}
}

func (r *gormPrintOrderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.PrintOrder) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *gormPrintOrderRepository) CreateFiles(ctx context.Context, tx *gorm.DB, files []models.PrintOrderFile) error {
	return tx.WithContext(ctx).Create(&files).Error
}

func (r *gormPrintOrderRepository) GetByID(ctx context.Context, id string) (*models.PrintOrder, error) {
	var order models.PrintOrder
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Files").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormPrintOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.PrintOrder, error) {
	var orders []models.PrintOrder
	err := r.db.WithContext(ctx).
		Preload("Files").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormPrintOrderRepository) GetAll(ctx context.Context) ([]models.PrintOrder, error) {
	var orders []models.PrintOrder
	err := r.db.WithContext(ctx).
		Preload("Files").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormPrintOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.PrintOrder{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
