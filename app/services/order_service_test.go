package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/events"
	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	svc      *OrderService
	notifier *recordingNotifier
	user     *models.User
	product  *models.Product
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.notifier = &recordingNotifier{}
	s.svc = NewOrderService(repositories.NewOrderRepository(s.db), s.notifier)
	s.user = createTestUser(s.T(), s.db, "alice")
	category := createTestCategory(s.T(), s.db, "Stationery")
	s.product = createTestProduct(s.T(), s.db, "Notebook", 100, nil, category.ID)
}

func (s *OrderServiceTestSuite) createOrder(status string) *models.Order {
	s.T().Helper()

	order := &models.Order{
		UserID:        s.user.ID,
		TotalPrice:    decimal.NewFromInt(200),
		Status:        status,
		PaymentStatus: models.PaymentCOD,
		OrderItems: []models.OrderItem{
			{ProductID: s.product.ID, Quantity: 2, Price: decimal.NewFromInt(200)},
		},
	}
	require.NoError(s.T(), s.db.Create(order).Error)
	return order
}

func (s *OrderServiceTestSuite) TestUpdateStatusEmitsNotification() {
	order := s.createOrder(models.OrderStatusPending)

	updated, err := s.svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusShipped)
	require.NoError(s.T(), err)
	require.Equal(s.T(), models.OrderStatusShipped, updated.Status)

	recorded := s.notifier.recorded()
	require.Len(s.T(), recorded, 1)
	ev := recorded[0]
	require.Equal(s.T(), events.KindOrder, ev.Kind)
	require.Equal(s.T(), order.ID, ev.OrderID)
	require.Equal(s.T(), "alice@example.com", ev.Recipient)
	require.Equal(s.T(), "alice", ev.Username)
	require.Equal(s.T(), models.OrderStatusPending, ev.OldStatus)
	require.Equal(s.T(), models.OrderStatusShipped, ev.NewStatus)
	require.Len(s.T(), ev.Items, 1)
	require.Equal(s.T(), "Notebook", ev.Items[0].Name)
	require.Equal(s.T(), 2, ev.Items[0].Quantity)
}

func (s *OrderServiceTestSuite) TestUpdateStatusPersists() {
	order := s.createOrder(models.OrderStatusPending)

	_, err := s.svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusCancelled)
	require.NoError(s.T(), err)

	var stored models.Order
	require.NoError(s.T(), s.db.First(&stored, "id = ?", order.ID).Error)
	require.Equal(s.T(), models.OrderStatusCancelled, stored.Status)
}

func (s *OrderServiceTestSuite) TestSameStatusEmitsNothing() {
	order := s.createOrder(models.OrderStatusShipped)

	updated, err := s.svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusShipped)
	require.NoError(s.T(), err)
	require.Equal(s.T(), models.OrderStatusShipped, updated.Status)
	require.Empty(s.T(), s.notifier.recorded())
}

func (s *OrderServiceTestSuite) TestUpdateStatusRejectsUnknownStatus() {
	order := s.createOrder(models.OrderStatusPending)

	_, err := s.svc.UpdateStatus(context.Background(), order.ID, "teleported")
	require.True(s.T(), apperrors.IsValidation(err))
	require.Empty(s.T(), s.notifier.recorded())
}

func (s *OrderServiceTestSuite) TestUpdateStatusUnknownOrder() {
	_, err := s.svc.UpdateStatus(context.Background(), "no-such-order", models.OrderStatusShipped)
	require.True(s.T(), apperrors.IsNotFound(err))
}

func (s *OrderServiceTestSuite) TestBulkUpdateEmitsPerOrder() {
	first := s.createOrder(models.OrderStatusPending)
	second := s.createOrder(models.OrderStatusPending)
	alreadyShipped := s.createOrder(models.OrderStatusShipped)

	updated, err := s.svc.BulkUpdateStatus(
		context.Background(),
		[]string{first.ID, second.ID, alreadyShipped.ID, "no-such-order"},
		models.OrderStatusShipped,
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, updated)

	// The already-shipped order counts as updated but emits nothing, and the
	// unknown id is skipped.
	require.Len(s.T(), s.notifier.recorded(), 2)
}

func (s *OrderServiceTestSuite) TestBulkUpdateRejectsUnknownStatus() {
	updated, err := s.svc.BulkUpdateStatus(context.Background(), []string{"any"}, "lost")
	require.True(s.T(), apperrors.IsValidation(err))
	require.Zero(s.T(), updated)
}

func (s *OrderServiceTestSuite) TestListByUserReturnsOwnOrdersOnly() {
	mine := s.createOrder(models.OrderStatusPending)
	other := createTestUser(s.T(), s.db, "bob")
	theirs := &models.Order{
		UserID:        other.ID,
		TotalPrice:    decimal.NewFromInt(50),
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentUPI,
	}
	require.NoError(s.T(), s.db.Create(theirs).Error)

	orders, err := s.svc.ListByUser(context.Background(), s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), orders, 1)
	require.Equal(s.T(), mine.ID, orders[0].ID)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
