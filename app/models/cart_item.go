package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one pending line in a user's cart. Rows are never deleted by
// checkout; they flip to IsCheckedOut and stop being "active".
type CartItem struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID       string          `gorm:"size:36;index;not null" json:"user_id"`
	User         User            `gorm:"foreignKey:UserID" json:"-"`
	ProductID    string          `gorm:"size:36;index;not null" json:"product_id"`
	Product      *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(16,2)" json:"total_price"`
	IsCheckedOut bool            `gorm:"default:false;index" json:"is_checked_out"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}

// CartLineTotal computes quantity x effective unit price. Callers must invoke
// it before every persist of a cart item; totals are never trusted from input.
func CartLineTotal(p *Product, quantity int) decimal.Decimal {
	return p.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(quantity)))
}
