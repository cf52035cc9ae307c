package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID                string              `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name              string              `gorm:"size:255;not null" json:"name"`
	ShortDescription  string              `gorm:"size:255" json:"short_description"`
	FullDescription   string              `gorm:"type:text" json:"full_description"`
	Image             string              `gorm:"size:255" json:"image"`
	Price             decimal.Decimal     `gorm:"type:decimal(16,2);not null" json:"price"`
	SalePrice         decimal.NullDecimal `gorm:"type:decimal(16,2)" json:"sale_price"`
	AvailableQuantity int                 `gorm:"not null" json:"available_quantity"`
	CategoryID        string              `gorm:"size:36;index;not null" json:"category_id"`
	Category          Category            `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"-"`
	DeletedAt         gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// EffectiveUnitPrice is the sale price when one is set, the regular price otherwise.
func (p *Product) EffectiveUnitPrice() decimal.Decimal {
	if p.SalePrice.Valid {
		return p.SalePrice.Decimal
	}
	return p.Price
}
