package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderAddress captures shipping and contact details at checkout, one row per order.
type OrderAddress struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID    string `gorm:"size:36;not null;uniqueIndex" json:"order_id"`
	FullName   string `gorm:"size:255;not null" json:"full_name"`
	Phone      string `gorm:"size:20;not null" json:"phone"`
	Line1      string `gorm:"size:255;not null" json:"line1"`
	Line2      string `gorm:"size:255" json:"line2"`
	City       string `gorm:"size:100;not null" json:"city"`
	State      string `gorm:"size:100;not null" json:"state"`
	PostalCode string `gorm:"size:20;not null" json:"postal_code"`
}

func (a *OrderAddress) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
