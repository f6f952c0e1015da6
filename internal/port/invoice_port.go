package port

import (
	"context"

	"github.com/nikolayk812/indukitchen/internal/domain"
)

type InvoiceRepository interface {
	GetInvoice(ctx context.Context, id int64) (domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// GetResolvedInvoice loads the invoice with its cart, customer and linked products in one query.
	GetResolvedInvoice(ctx context.Context, id int64) (domain.ResolvedInvoice, error)

	CreateInvoice(ctx context.Context, cartID int64, paymentMethodID *int32) (domain.Invoice, error)

	DeleteInvoice(ctx context.Context, id int64) error
}

type PaymentMethodRepository interface {
	GetPaymentMethod(ctx context.Context, id int32) (domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
