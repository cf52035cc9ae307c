package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/grabpoint/api/app/events"
	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/models/migrations"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   "irrelevant",
		IsVerified: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, salePrice *float64, categoryID string) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:              name,
		ShortDescription:  name,
		FullDescription:   name,
		Price:             decimal.NewFromFloat(price),
		AvailableQuantity: 100,
		CategoryID:        categoryID,
	}
	if salePrice != nil {
		product.SalePrice = decimal.NewNullDecimal(decimal.NewFromFloat(*salePrice))
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func floatPtr(f float64) *float64 { return &f }

// recordingNotifier captures emitted events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []events.StatusChanged
}

func (n *recordingNotifier) StatusChanged(_ context.Context, ev events.StatusChanged) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return nil
}

func (n *recordingNotifier) recorded() []events.StatusChanged {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]events.StatusChanged, len(n.events))
	copy(out, n.events)
	return out
}

// multipartFiles builds real multipart file headers the way an HTTP upload would.
func multipartFiles(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["files"]
}
