package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/grabpoint/api/app/events"
)

func TestBuildStatusEmailBodyForOrder(t *testing.T) {
	body := BuildStatusEmailBody(events.StatusChanged{
		Kind:      events.KindOrder,
		OrderID:   "order-1",
		Username:  "alice",
		OldStatus: "pending",
		NewStatus: "shipped",
		Total:     decimal.NewFromFloat(349.5),
		Items: []events.ItemLine{
			{Name: "Notebook", Quantity: 2, Price: decimal.NewFromFloat(99.5)},
			{Name: "Fountain Pen", Quantity: 1, Price: decimal.NewFromInt(250)},
		},
	})

	require.Contains(t, body, "Hi alice,")
	require.Contains(t, body, "order <strong>order-1</strong> is now <strong>shipped</strong>")
	require.Contains(t, body, "Notebook")
	require.Contains(t, body, "₹99.50")
	require.Contains(t, body, "₹349.50")
	require.NotContains(t, body, "Preferences:")
}

func TestBuildStatusEmailBodyForPrintOrder(t *testing.T) {
	body := BuildStatusEmailBody(events.StatusChanged{
		Kind:      events.KindPrintOrder,
		OrderID:   "print-1",
		Username:  "bob",
		NewStatus: "printed",
		Total:     decimal.NewFromInt(45),
		Preferences: &events.PrintPreferences{
			PaperSize:     "A4",
			ColorMode:     "color",
			PrintSides:    "single",
			BindingOption: "spiral",
		},
		Files: []string{"thesis.pdf", "appendix.pdf"},
	})

	require.Contains(t, body, "print order <strong>print-1</strong> is now <strong>printed</strong>")
	require.Contains(t, body, "Preferences: A4, color, single, binding: spiral")
	require.Contains(t, body, "<li>thesis.pdf</li>")
	require.Contains(t, body, "<li>appendix.pdf</li>")
	require.Contains(t, body, "₹45.00")
}

func TestBuildResetCodeEmailBody(t *testing.T) {
	body := BuildResetCodeEmailBody("042137", 15)
	require.Contains(t, body, "042137")
	require.Contains(t, body, "expires in 15 minutes")
}
