package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/grabpoint/api/app/events"
	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
)

// Notifier receives one event per order whose status actually changed.
// Implementations must be safe to fail: callers log and move on.
type Notifier interface {
	StatusChanged(ctx context.Context, ev events.StatusChanged) error
}

type OrderService struct {
	orderRepo repositories.OrderRepository
	notifier  Notifier
}

func NewOrderService(orderRepo repositories.OrderRepository, notifier Notifier) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}
	if order == nil {
		return nil, apperrors.NotFoundf("order not found")
	}
	return order, nil
}

// UpdateStatus sets the order status. Transitions are deliberately
// unconstrained beyond enum membership; only operators reach this path.
// A notification event is emitted when the status actually changed, and a
// failed emit never fails the update.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, apperrors.Validationf("invalid order status %q", status)
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == status {
		return order, nil
	}

	oldStatus := order.Status
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = status

	ev := events.StatusChanged{
		Kind:      events.KindOrder,
		OrderID:   order.ID,
		Recipient: order.User.Email,
		Username:  order.User.Username,
		OldStatus: oldStatus,
		NewStatus: status,
		Total:     order.TotalPrice,
	}
	for _, item := range order.OrderItems {
		line := events.ItemLine{Quantity: item.Quantity, Price: item.Price}
		if item.Product != nil {
			line.Name = item.Product.Name
		}
		ev.Items = append(ev.Items, line)
	}
	if err := s.notifier.StatusChanged(ctx, ev); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed to emit order status notification")
	}

	return order, nil
}

// BulkUpdateStatus applies the single-order transition to every id, emitting
// one notification per changed order. Unknown ids are skipped.
func (s *OrderService) BulkUpdateStatus(ctx context.Context, orderIDs []string, status string) (int, error) {
	if !models.ValidOrderStatus(status) {
		return 0, apperrors.Validationf("invalid order status %q", status)
	}

	updated := 0
	for _, id := range orderIDs {
		if _, err := s.UpdateStatus(ctx, id, status); err != nil {
			if apperrors.IsNotFound(err) {
				log.Warn().Str("order_id", id).Msg("bulk status update skipped unknown order")
				continue
			}
			return updated, err
		}
		updated++
	}
	return updated, nil
}
