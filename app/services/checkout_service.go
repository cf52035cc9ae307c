package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
)

type AddressInput struct {
	FullName   string `json:"full_name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

type CheckoutInput struct {
	PaymentStatus string       `json:"payment_status" validate:"required"`
	TransactionID string       `json:"transaction_id"`
	Address       AddressInput `json:"address"`
}

type CheckoutService struct {
	db        *gorm.DB
	cartRepo  repositories.CartRepositoryImpl
	orderRepo repositories.OrderRepository
}

func NewCheckoutService(db *gorm.DB, cartRepo repositories.CartRepositoryImpl, orderRepo repositories.OrderRepository) *CheckoutService {
	return &CheckoutService{
		db:        db,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
	}
}

// Checkout atomically converts the caller's active cart into one order with
// its items and shipping address, then flags the cart rows checked out.
// Everything runs in a single transaction over row-locked cart rows, so two
// concurrent checkouts cannot spend the same cart: the loser observes an
// empty cart.
func (s *CheckoutService) Checkout(ctx context.Context, userID string, in CheckoutInput) (*models.Order, error) {
	if !models.ValidPaymentStatus(in.PaymentStatus) {
		return nil, apperrors.Validationf("invalid payment status %q, choose one of cod, card, upi", in.PaymentStatus)
	}
	if err := validateAddress(in.Address); err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("checkout: rolling back after panic")
			tx.Rollback()
			panic(r)
		}
	}()

	items, err := s.cartRepo.GetActiveForUpdate(ctx, tx, userID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to read active cart: %w", err)
	}
	if len(items) == 0 {
		tx.Rollback()
		return nil, apperrors.Validationf("cart is empty")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}

	order := &models.Order{
		UserID:        userID,
		TotalPrice:    total,
		Status:        models.OrderStatusPending,
		PaymentStatus: in.PaymentStatus,
	}
	if in.TransactionID != "" {
		order.TransactionID = &in.TransactionID
	}
	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Price carries the cart line total at this moment, not the unit price.
	orderItems := make([]models.OrderItem, 0, len(items))
	cartIDs := make([]string, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.TotalPrice,
		})
		cartIDs = append(cartIDs, item.ID)
	}
	if err := s.orderRepo.CreateItems(ctx, tx, orderItems); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	address := &models.OrderAddress{
		OrderID:    order.ID,
		FullName:   in.Address.FullName,
		Phone:      in.Address.Phone,
		Line1:      in.Address.Line1,
		Line2:      in.Address.Line2,
		City:       in.Address.City,
		State:      in.Address.State,
		PostalCode: in.Address.PostalCode,
	}
	if err := s.orderRepo.CreateAddress(ctx, tx, address); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order address: %w", err)
	}

	if err := s.cartRepo.MarkCheckedOut(ctx, tx, cartIDs); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to mark cart items checked out: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}

	created, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload created order: %w", err)
	}
	return created, nil
}

func validateAddress(a AddressInput) error {
	switch {
	case a.FullName == "":
		return apperrors.Validationf("address full_name is required")
	case a.Phone == "":
		return apperrors.Validationf("address phone is required")
	case a.Line1 == "":
		return apperrors.Validationf("address line1 is required")
	case a.City == "":
		return apperrors.Validationf("address city is required")
	case a.State == "":
		return apperrors.Validationf("address state is required")
	case a.PostalCode == "":
		return apperrors.Validationf("address postal_code is required")
	}
	return nil
}
