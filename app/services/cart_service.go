package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
)

type CartService struct {
	cartRepo    repositories.CartRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem adds quantity of a product to the caller's cart. An existing active
// row for the same product absorbs the addition instead of creating a sibling.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.Validationf("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NotFoundf("product not found")
	}

	existing, err := s.cartRepo.FindActiveByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existing != nil {
		existing.Quantity += quantity
		existing.TotalPrice = models.CartLineTotal(product, existing.Quantity)
		existing.UpdatedAt = time.Now()
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		existing.Product = product
		return existing, nil
	}

	item := &models.CartItem{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: models.CartLineTotal(product, quantity),
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	item.Product = product
	return item, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, cartItemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.Validationf("quantity must be at least 1")
	}

	item, err := s.cartRepo.FindOwned(ctx, userID, cartItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}
	if item == nil {
		return nil, apperrors.NotFoundf("cart item not found")
	}

	item.Quantity = quantity
	item.TotalPrice = models.CartLineTotal(item.Product, quantity)
	item.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, cartItemID string) error {
	item, err := s.cartRepo.FindOwned(ctx, userID, cartItemID)
	if err != nil {
		return fmt.Errorf("failed to look up cart item: %w", err)
	}
	if item == nil {
		return apperrors.NotFoundf("cart item not found")
	}
	if err := s.cartRepo.Delete(ctx, item); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// ListActive returns the caller's not-checked-out items and the sum of their
// line totals, decimal zero for an empty cart.
func (s *CartService) ListActive(ctx context.Context, userID string) ([]models.CartItem, decimal.Decimal, error) {
	items, err := s.cartRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to list cart items: %w", err)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	return items, total, nil
}
