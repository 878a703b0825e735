package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
)

// OrderNotifier tells the shopper their order was placed. Failures never undo the order.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, contact models.ContactInfo, order *models.Order) error
}

type emailNotifier struct {
	email sendgrid.EmailService
}

func NewEmailNotifier(email sendgrid.EmailService) OrderNotifier {
	return &emailNotifier{email: email}
}

func (n *emailNotifier) OrderPlaced(ctx context.Context, contact models.ContactInfo, order *models.Order) error {
	text, htmlBody := renderOrderConfirmation(contact, order)

	err := n.email.Send(ctx, &sendgrid.Message{
		To:          contact.Email,
		ToName:      strings.TrimSpace(contact.FirstName + " " + contact.LastName),
		Subject:     fmt.Sprintf("Pedido #%d confirmado", order.ID),
		Content:     text,
		HTMLContent: htmlBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	return nil
}

type logNotifier struct{}

// NewLogNotifier only logs. It is used when no SendGrid key is configured.
func NewLogNotifier() OrderNotifier {
	return logNotifier{}
}

func (logNotifier) OrderPlaced(ctx context.Context, contact models.ContactInfo, order *models.Order) error {
	middleware.LoggerFromContext(ctx).Info("Order confirmation (email disabled)",
		slog.Int64("orderId", order.ID),
		slog.String("to", contact.Email),
		slog.String("total", order.Total.StringFixed(2)),
	)

	return nil
}

func renderOrderConfirmation(contact models.ContactInfo, order *models.Order) (string, string) {
	var text, body strings.Builder

	fmt.Fprintf(&text, "Hola %s,\n\nRecibimos tu pedido #%d.\n\n", contact.FirstName, order.ID)
	fmt.Fprintf(&body, "<p>Hola %s,</p><p>Recibimos tu pedido <strong>#%d</strong>.</p><ul>",
		html.EscapeString(contact.FirstName), order.ID)

	for _, line := range order.Lines {
		fmt.Fprintf(&text, "- %s x%d: %s\n", line.ProductName, line.Quantity, line.Subtotal.StringFixed(2))
		fmt.Fprintf(&body, "<li>%s x%d: %s</li>", html.EscapeString(line.ProductName), line.Quantity, line.Subtotal.StringFixed(2))
	}

	fmt.Fprintf(&text, "\nTotal: %s\n", order.Total.StringFixed(2))
	fmt.Fprintf(&body, "</ul><p>Total: <strong>%s</strong></p>", order.Total.StringFixed(2))

	return text.String(), body.String()
}
