package services

import (
	"context"
	"os"
	"path/filepath"
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

type PrintOrderServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	svc      *PrintOrderService
	notifier *recordingNotifier
	mediaDir string
	user     *models.User
}

func (s *PrintOrderServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.notifier = &recordingNotifier{}
	s.mediaDir = s.T().TempDir()
	s.svc = NewPrintOrderService(
		s.db,
		repositories.NewPrintOrderRepository(s.db),
		NewDiskStorage(s.mediaDir),
		s.notifier,
	)
	s.user = createTestUser(s.T(), s.db, "alice")
}

func (s *PrintOrderServiceTestSuite) validInput() PrintOrderInput {
	return PrintOrderInput{
		PaperSize:     "A4",
		ColorMode:     "black_white",
		PrintSides:    "double",
		BindingOption: "spiral",
		Urgency:       "standard",
		Notes:         "staple the cover page",
		TotalPrice:    decimal.NewFromInt(45),
		PaymentStatus: models.PaymentUPI,
		TransactionID: "upi-123",
	}
}

func (s *PrintOrderServiceTestSuite) TestCreateStoresOrderFilesAndUploads() {
	uploads := multipartFiles(s.T(), "thesis.pdf", "appendix.pdf")

	order, err := s.svc.Create(context.Background(), s.user.ID, s.validInput(), uploads)
	require.NoError(s.T(), err)
	require.Equal(s.T(), models.PrintStatusPending, order.Status)
	require.Equal(s.T(), "A4", order.PaperSize)
	require.NotNil(s.T(), order.TransactionID)
	require.Equal(s.T(), "upi-123", *order.TransactionID)
	require.Len(s.T(), order.Files, 2)

	names := []string{order.Files[0].OriginalName, order.Files[1].OriginalName}
	require.ElementsMatch(s.T(), []string{"thesis.pdf", "appendix.pdf"}, names)

	for _, f := range order.Files {
		onDisk := filepath.Join(s.mediaDir, f.Path)
		_, err := os.Stat(onDisk)
		require.NoError(s.T(), err, "stored file %s should exist on disk", f.Path)
		require.Equal(s.T(), ".pdf", filepath.Ext(onDisk))
	}
}

func (s *PrintOrderServiceTestSuite) TestCreateRequiresAtLeastOneFile() {
	_, err := s.svc.Create(context.Background(), s.user.ID, s.validInput(), nil)
	require.True(s.T(), apperrors.IsValidation(err))

	var count int64
	require.NoError(s.T(), s.db.Model(&models.PrintOrder{}).Count(&count).Error)
	require.Zero(s.T(), count)
}

func (s *PrintOrderServiceTestSuite) TestCreateRejectsCardPayment() {
	in := s.validInput()
	in.PaymentStatus = models.PaymentCard

	_, err := s.svc.Create(context.Background(), s.user.ID, in, multipartFiles(s.T(), "doc.pdf"))
	require.True(s.T(), apperrors.IsValidation(err))
}

func (s *PrintOrderServiceTestSuite) TestListByUserIsScoped() {
	_, err := s.svc.Create(context.Background(), s.user.ID, s.validInput(), multipartFiles(s.T(), "mine.pdf"))
	require.NoError(s.T(), err)

	other := createTestUser(s.T(), s.db, "bob")
	_, err = s.svc.Create(context.Background(), other.ID, s.validInput(), multipartFiles(s.T(), "theirs.pdf"))
	require.NoError(s.T(), err)

	orders, err := s.svc.ListByUser(context.Background(), s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), orders, 1)
	require.Equal(s.T(), s.user.ID, orders[0].UserID)
}

func (s *PrintOrderServiceTestSuite) TestUpdateStatusEmitsPreferencesAndFiles() {
	order, err := s.svc.Create(context.Background(), s.user.ID, s.validInput(), multipartFiles(s.T(), "thesis.pdf"))
	require.NoError(s.T(), err)

	updated, err := s.svc.UpdateStatus(context.Background(), order.ID, models.PrintStatusConfirmed)
	require.NoError(s.T(), err)
	require.Equal(s.T(), models.PrintStatusConfirmed, updated.Status)

	recorded := s.notifier.recorded()
	require.Len(s.T(), recorded, 1)
	ev := recorded[0]
	require.Equal(s.T(), events.KindPrintOrder, ev.Kind)
	require.Equal(s.T(), "alice@example.com", ev.Recipient)
	require.Equal(s.T(), models.PrintStatusPending, ev.OldStatus)
	require.Equal(s.T(), models.PrintStatusConfirmed, ev.NewStatus)
	require.NotNil(s.T(), ev.Preferences)
	require.Equal(s.T(), "A4", ev.Preferences.PaperSize)
	require.Equal(s.T(), "spiral", ev.Preferences.BindingOption)
	require.Equal(s.T(), []string{"thesis.pdf"}, ev.Files)
}

func (s *PrintOrderServiceTestSuite) TestUpdateStatusRejectsUnknownStatus() {
	order, err := s.svc.Create(context.Background(), s.user.ID, s.validInput(), multipartFiles(s.T(), "doc.pdf"))
	require.NoError(s.T(), err)

	_, err = s.svc.UpdateStatus(context.Background(), order.ID, "shipped")
	require.True(s.T(), apperrors.IsValidation(err))
	require.Empty(s.T(), s.notifier.recorded())
}

func (s *PrintOrderServiceTestSuite) TestBulkUpdateSkipsUnknownIDs() {
	first, err := s.svc.Create(context.Background(), s.user.ID, s.validInput(), multipartFiles(s.T(), "a.pdf"))
	require.NoError(s.T(), err)
	second, err := s.svc.Create(context.Background(), s.user.ID, s.validInput(), multipartFiles(s.T(), "b.pdf"))
	require.NoError(s.T(), err)

	updated, err := s.svc.BulkUpdateStatus(
		context.Background(),
		[]string{first.ID, "no-such-order", second.ID},
		models.PrintStatusPrinted,
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, updated)
	require.Len(s.T(), s.notifier.recorded(), 2)
}

func TestPrintOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PrintOrderServiceTestSuite))
}
