// Package events defines the messages exchanged between order mutations and
// the notification consumer. Payloads carry everything the mailer needs so
// the consumer never touches the database.
package events

import "github.com/shopspring/decimal"

const (
	KindOrder      = "order"
	KindPrintOrder = "print_order"
)

type ItemLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type PrintPreferences struct {
	PaperSize     string `json:"paper_size"`
	ColorMode     string `json:"color_mode"`
	PrintSides    string `json:"print_sides"`
	BindingOption string `json:"binding_option"`
	Urgency       string `json:"urgency"`
}

// StatusChanged is published once per order whose status actually changed,
// including each order of a bulk update.
type StatusChanged struct {
	Kind        string            `json:"kind"`
	OrderID     string            `json:"order_id"`
	Recipient   string            `json:"recipient"`
	Username    string            `json:"username"`
	OldStatus   string            `json:"old_status"`
	NewStatus   string            `json:"new_status"`
	Total       decimal.Decimal   `json:"total"`
	Items       []ItemLine        `json:"items,omitempty"`
	Preferences *PrintPreferences `json:"preferences,omitempty"`
	Files       []string          `json:"files,omitempty"`
}
