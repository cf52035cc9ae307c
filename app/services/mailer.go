package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/leekchan/accounting"

	"github.com/grabpoint/api/app/events"
)

type MailerConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config MailerConfig
}

func NewMailer(cfg MailerConfig) *Mailer {
	return &Mailer{config: cfg}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {
	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg strings.Builder
	for k, v := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", k, v)
	}
	msg.WriteString("\r\n" + htmlBody)

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

var money = accounting.Accounting{Symbol: "₹", Precision: 2}

func BuildResetCodeEmailBody(code string, expiryMinutes int) string {
	return fmt.Sprintf(`
        <html>
        <body style="font-family: Arial, sans-serif; color: #333;">
            <h2>Password reset requested</h2>
            <p>Enter the following code on the reset page:</p>
            <p style="font-size: 2em; font-weight: bold;">%s</p>
            <p>The code expires in %d minutes. If you did not request a reset, ignore this email.</p>
            <p>GrabPoint</p>
        </body>
        </html>
    `, code, expiryMinutes)
}

// BuildStatusEmailBody renders the notification for a status change. Print
// orders also list the preferences and attached files.
func BuildStatusEmailBody(ev events.StatusChanged) string {
	var b strings.Builder

	kind := "order"
	if ev.Kind == events.KindPrintOrder {
		kind = "print order"
	}

	fmt.Fprintf(&b, `<html><body style="font-family: Arial, sans-serif; color: #333;">`)
	fmt.Fprintf(&b, "<h2>Hi %s,</h2>", ev.Username)
	fmt.Fprintf(&b, "<p>Your %s <strong>%s</strong> is now <strong>%s</strong>.</p>", kind, ev.OrderID, ev.NewStatus)

	if len(ev.Items) > 0 {
		b.WriteString("<table border=\"0\" cellpadding=\"4\"><tr><th align=\"left\">Item</th><th>Qty</th><th align=\"right\">Total</th></tr>")
		for _, item := range ev.Items {
			fmt.Fprintf(&b, "<tr><td>%s</td><td align=\"center\">%d</td><td align=\"right\">%s</td></tr>",
				item.Name, item.Quantity, money.FormatMoney(item.Price))
		}
		b.WriteString("</table>")
	}

	if ev.Preferences != nil {
		p := ev.Preferences
		fmt.Fprintf(&b, "<p>Preferences: %s, %s, %s", p.PaperSize, p.ColorMode, p.PrintSides)
		if p.BindingOption != "" {
			fmt.Fprintf(&b, ", binding: %s", p.BindingOption)
		}
		if p.Urgency != "" {
			fmt.Fprintf(&b, ", urgency: %s", p.Urgency)
		}
		b.WriteString("</p>")
	}

	if len(ev.Files) > 0 {
		b.WriteString("<p>Files:</p><ul>")
		for _, name := range ev.Files {
			fmt.Fprintf(&b, "<li>%s</li>", name)
		}
		b.WriteString("</ul>")
	}

	fmt.Fprintf(&b, "<p>Order total: <strong>%s</strong></p>", money.FormatMoney(ev.Total))
	b.WriteString("<p>Thank you for shopping with GrabPoint.</p></body></html>")

	return b.String()
}
