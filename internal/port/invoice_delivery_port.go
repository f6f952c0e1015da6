package port

import (
	"context"

	"github.com/nikolayk812/indukitchen/internal/domain"
)

type InvoiceRenderer interface {
	// Render returns no bytes and no error when the invoice has no cart.
	Render(ctx context.Context, invoice domain.ResolvedInvoice) ([]byte, error)
}

type Notifier interface {
	// Send returns *domain.DeliveryError when the message could not be handed to the mail transport.
	Send(ctx context.Context, to, subject, body string, attachment []byte, attachmentName string) error
}

type InvoiceEmailer interface {
	// EmailInvoice renders the invoice and sends it to one recipient, the customer when to is blank.
	// Blank subject or body get defaults.
	EmailInvoice(ctx context.Context, invoiceID int64, to, subject, body string) error
}
