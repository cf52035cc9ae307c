package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/events"
	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
)

type PrintOrderInput struct {
	PaperSize     string `validate:"required"`
	ColorMode     string `validate:"required"`
	PrintSides    string `validate:"required"`
	BindingOption string
	Urgency       string
	Notes         string
	TotalPrice    decimal.Decimal
	PaymentStatus string `validate:"required"`
	TransactionID string
}

type PrintOrderService struct {
	db        *gorm.DB
	printRepo repositories.PrintOrderRepository
	storage   *DiskStorage
	notifier  Notifier
}

func NewPrintOrderService(db *gorm.DB, printRepo repositories.PrintOrderRepository, storage *DiskStorage, notifier Notifier) *PrintOrderService {
	return &PrintOrderService{
		db:        db,
		printRepo: printRepo,
		storage:   storage,
		notifier:  notifier,
	}
}

// Create stores the print order and one attachment row per uploaded file in
// a single transaction, so a half-created order never holds orphaned files.
func (s *PrintOrderService) Create(ctx context.Context, userID string, in PrintOrderInput, uploads []*multipart.FileHeader) (*models.PrintOrder, error) {
	if !models.ValidPrintPaymentStatus(in.PaymentStatus) {
		return nil, apperrors.Validationf("invalid payment status %q, choose one of cod, upi", in.PaymentStatus)
	}
	if len(uploads) == 0 {
		return nil, apperrors.Validationf("at least one file is required")
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	order := &models.PrintOrder{
		UserID:        userID,
		PaperSize:     in.PaperSize,
		ColorMode:     in.ColorMode,
		PrintSides:    in.PrintSides,
		BindingOption: in.BindingOption,
		Urgency:       in.Urgency,
		Notes:         in.Notes,
		TotalPrice:    in.TotalPrice,
		Status:        models.PrintStatusPending,
		PaymentStatus: in.PaymentStatus,
	}
	if in.TransactionID != "" {
		order.TransactionID = &in.TransactionID
	}
	if err := s.printRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create print order: %w", err)
	}

	files := make([]models.PrintOrderFile, 0, len(uploads))
	for _, upload := range uploads {
		path, err := s.storage.Save(upload, "print_orders")
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to store uploaded file %q: %w", upload.Filename, err)
		}
		files = append(files, models.PrintOrderFile{
			PrintOrderID: order.ID,
			Path:         path,
			OriginalName: upload.Filename,
		})
	}
	if err := s.printRepo.CreateFiles(ctx, tx, files); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to attach files: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit print order: %w", err)
	}

	return s.printRepo.GetByID(ctx, order.ID)
}

func (s *PrintOrderService) ListByUser(ctx context.Context, userID string) ([]models.PrintOrder, error) {
	return s.printRepo.FindByUserID(ctx, userID)
}

func (s *PrintOrderService) ListAll(ctx context.Context) ([]models.PrintOrder, error) {
	return s.printRepo.GetAll(ctx)
}

func (s *PrintOrderService) Get(ctx context.Context, id string) (*models.PrintOrder, error) {
	order, err := s.printRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up print order: %w", err)
	}
	if order == nil {
		return nil, apperrors.NotFoundf("print order not found")
	}
	return order, nil
}

// UpdateStatus mirrors OrderService.UpdateStatus for the print lifecycle; the
// emitted event additionally carries preferences and the attached file list.
func (s *PrintOrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.PrintOrder, error) {
	if !models.ValidPrintStatus(status) {
		return nil, apperrors.Validationf("invalid print order status %q", status)
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == status {
		return order, nil
	}

	oldStatus := order.Status
	if err := s.printRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("failed to update print order status: %w", err)
	}
	order.Status = status

	ev := events.StatusChanged{
		Kind:      events.KindPrintOrder,
		OrderID:   order.ID,
		Recipient: order.User.Email,
		Username:  order.User.Username,
		OldStatus: oldStatus,
		NewStatus: status,
		Total:     order.TotalPrice,
		Preferences: &events.PrintPreferences{
			PaperSize:     order.PaperSize,
			ColorMode:     order.ColorMode,
			PrintSides:    order.PrintSides,
			BindingOption: order.BindingOption,
			Urgency:       order.Urgency,
		},
	}
	for _, f := range order.Files {
		ev.Files = append(ev.Files, f.OriginalName)
	}
	if err := s.notifier.StatusChanged(ctx, ev); err != nil {
		log.Error().Err(err).Str("print_order_id", order.ID).Msg("failed to emit print order status notification")
	}

	return order, nil
}

func (s *PrintOrderService) BulkUpdateStatus(ctx context.Context, orderIDs []string, status string) (int, error) {
	if !models.ValidPrintStatus(status) {
		return 0, apperrors.Validationf("invalid print order status %q", status)
	}

	updated := 0
	for _, id := range orderIDs {
		if _, err := s.UpdateStatus(ctx, id, status); err != nil {
			if apperrors.IsNotFound(err) {
				log.Warn().Str("print_order_id", id).Msg("bulk status update skipped unknown print order")
				continue
			}
			return updated, err
		}
		updated++
	}
	return updated, nil
}
