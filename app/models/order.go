package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentCOD  = "cod"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusShipped:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

var paymentStatuses = map[string]bool{
	PaymentCOD:  true,
	PaymentCard: true,
	PaymentUPI:  true,
}

func ValidOrderStatus(s string) bool   { return orderStatuses[s] }
func ValidPaymentStatus(s string) bool { return paymentStatuses[s] }

// Order is immutable after checkout except for status and payment fields.
type Order struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID        string          `gorm:"size:36;index;not null" json:"user_id"`
	User          User            `gorm:"foreignKey:UserID" json:"-"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_price"`
	Status        string          `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string          `gorm:"size:20;default:'cod'" json:"payment_status"`
	TransactionID *string         `gorm:"size:100" json:"transaction_id"`
	OrderItems    []OrderItem     `json:"items"`
	Address       *OrderAddress   `json:"address,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
