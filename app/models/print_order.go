package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PrintStatusPending   = "pending"
	PrintStatusConfirmed = "confirmed"
	PrintStatusPrinted   = "printed"
	PrintStatusDelivered = "delivered"
	PrintStatusCancelled = "cancelled"
)

var printStatuses = map[string]bool{
	PrintStatusPending:   true,
	PrintStatusConfirmed: true,
	PrintStatusPrinted:   true,
	PrintStatusDelivered: true,
	PrintStatusCancelled: true,
}

// Print orders pay by cod or upi only; card is not offered for this flow.
var printPaymentStatuses = map[string]bool{
	PaymentCOD: true,
	PaymentUPI: true,
}

func ValidPrintStatus(s string) bool        { return printStatuses[s] }
func ValidPrintPaymentStatus(s string) bool { return printPaymentStatuses[s] }

// PrintOrder is a standalone order type for document printing requests.
// It never derives from the cart.
type PrintOrder struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID        string           `gorm:"size:36;index;not null" json:"user_id"`
	User          User             `gorm:"foreignKey:UserID" json:"-"`
	PaperSize     string           `gorm:"size:20;not null" json:"paper_size"`
	ColorMode     string           `gorm:"size:20;not null" json:"color_mode"`
	PrintSides    string           `gorm:"size:20;not null" json:"print_sides"`
	BindingOption string           `gorm:"size:50" json:"binding_option"`
	Urgency       string           `gorm:"size:20" json:"urgency"`
	Notes         string           `gorm:"type:text" json:"notes"`
	TotalPrice    decimal.Decimal  `gorm:"type:decimal(16,2)" json:"total_price"`
	Status        string           `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string           `gorm:"size:20;default:'cod'" json:"payment_status"`
	TransactionID *string          `gorm:"size:100" json:"transaction_id"`
	Files         []PrintOrderFile `json:"files"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"-"`
}

func (po *PrintOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if po.ID == "" {
		po.ID = uuid.New().String()
	}
	return
}
