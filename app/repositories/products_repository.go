package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/grabpoint/api/app/models"
)

// ProductFilter narrows and orders catalog listings. CategoryIDs combine with
// OR; Search matches product name or category name.
type ProductFilter struct {
	Search      string
	CategoryIDs []string
	Ordering    string // "price", "-price", "name", "-name"; default name ASC
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Search(ctx context.Context, filter ProductFilter) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Search(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Preload("Category")

	if filter.Search != "" {
		keyword := "%" + filter.Search + "%"
		q = q.Where("products.name LIKE ? OR categories.name LIKE ?", keyword, keyword)
	}

	if len(filter.CategoryIDs) > 0 {
		q = q.Where("products.category_id IN ?", filter.CategoryIDs)
	}

	switch filter.Ordering {
	case "price":
		q = q.Order("products.price ASC")
	case "-price":
		q = q.Order("products.price DESC")
	case "-name":
		q = q.Order("products.name DESC")
	default:
		q = q.Order("products.name ASC")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
