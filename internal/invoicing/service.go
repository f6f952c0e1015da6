package invoicing

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/nikolayk812/indukitchen/internal/template"
	"github.com/shopspring/decimal"
)

type Service struct {
	invoices port.InvoiceRepository
	renderer port.InvoiceRenderer
	notifier port.Notifier
	emails   template.Engine
}

var _ port.InvoiceEmailer = (*Service)(nil)

func NewService(
	invoices port.InvoiceRepository,
	renderer port.InvoiceRenderer,
	notifier port.Notifier,
	emails template.Engine,
) (*Service, error) {
	if invoices == nil {
		return nil, fmt.Errorf("invoices is nil")
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier is nil")
	}

	return &Service{
		invoices: invoices,
		renderer: renderer,
		notifier: notifier,
		emails:   emails,
	}, nil
}

// RenderPDF fails with domain.ErrNotFound when the invoice or its cart is gone.
func (s *Service) RenderPDF(ctx context.Context, id int64) ([]byte, domain.Invoice, error) {
	data, resolved, err := s.render(ctx, id)
	if err != nil {
		return nil, domain.Invoice{}, err
	}

	return data, resolved.Invoice, nil
}

// EmailInvoice sends to the customer's email when to is blank.
func (s *Service) EmailInvoice(ctx context.Context, id int64, to, subject, body string) error {
	data, resolved, err := s.render(ctx, id)
	if err != nil {
		return fmt.Errorf("s.render: %w", err)
	}

	to = strings.TrimSpace(to)
	if to == "" && resolved.Customer != nil {
		to = strings.TrimSpace(resolved.Customer.Email)
	}
	if to == "" {
		return domain.NewInvalidRequest("recipient required")
	}

	email, err := s.emails.InvoiceEmail(id, subject, body)
	if err != nil {
		return fmt.Errorf("emails.InvoiceEmail: %w", err)
	}

	if err := s.notifier.Send(ctx, to, email.Subject, email.Body, data, resolved.Invoice.PDFName()); err != nil {
		return fmt.Errorf("notifier.Send: %w", err)
	}

	return nil
}

func (s *Service) render(ctx context.Context, id int64) ([]byte, domain.ResolvedInvoice, error) {
	resolved, err := s.invoices.GetResolvedInvoice(ctx, id)
	if err != nil {
		return nil, domain.ResolvedInvoice{}, fmt.Errorf("invoices.GetResolvedInvoice: %w", err)
	}

	data, err := s.renderer.Render(ctx, resolved)
	if err != nil {
		return nil, domain.ResolvedInvoice{}, fmt.Errorf("renderer.Render: %w", err)
	}

	if len(data) == 0 {
		return nil, domain.ResolvedInvoice{}, fmt.Errorf("invoice[%d] has no cart: %w", id, domain.ErrNotFound)
	}

	return data, resolved, nil
}

// Total is the invoice amount including IVA, unrounded.
func (s *Service) Total(ctx context.Context, id int64) (decimal.Decimal, error) {
	resolved, err := s.invoices.GetResolvedInvoice(ctx, id)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invoices.GetResolvedInvoice: %w", err)
	}

	return resolved.Totals().Total, nil
}
