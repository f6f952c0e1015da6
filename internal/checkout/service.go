package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/indukitchen/internal/checkout/steps"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
)

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"

	NotificationSent    = "sent"
	NotificationSkipped = "skipped"
	NotificationFailed  = "failed"
)

type Metrics interface {
	ObserveCheckout(outcome string, elapsed time.Duration)
	IncNotification(result string)
}

type Service struct {
	tx       port.Transactor
	emailer  port.InvoiceEmailer
	metrics  Metrics
	pipeline Pipeline
}

func NewService(tx port.Transactor, emailer port.InvoiceEmailer, metrics Metrics) (*Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx is nil")
	}
	if emailer == nil {
		return nil, fmt.Errorf("emailer is nil")
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Service{
		tx:       tx,
		emailer:  emailer,
		metrics:  metrics,
		pipeline: NewPipeline(),
	}, nil
}

// ProcessCart persists customer, cart and invoice in one transaction, then emails the invoice.
// Email delivery is best effort: its failure is logged and never changes the result.
func (s *Service) ProcessCart(ctx context.Context, req domain.CheckoutRequest) (domain.Cart, error) {
	start := time.Now()
	checkoutID := uuid.NewString()

	if err := req.Validate(); err != nil {
		s.metrics.ObserveCheckout(OutcomeRejected, time.Since(start))
		return domain.Cart{}, err
	}

	var state steps.State
	err := s.tx.WithinTx(ctx, func(ctx context.Context, stores port.Stores) error {
		state = steps.State{Stores: stores, Request: req}
		return s.pipeline.Run(ctx, &state)
	})
	if err != nil {
		err = classify(err)

		outcome := OutcomeFailed
		if !errors.Is(err, domain.ErrPersistence) {
			outcome = OutcomeRejected
		}
		s.metrics.ObserveCheckout(outcome, time.Since(start))

		slog.WarnContext(ctx, "checkout aborted",
			"method", "Service.ProcessCart",
			"checkout_id", checkoutID,
			"error", err)

		return domain.Cart{}, err
	}

	s.metrics.ObserveCheckout(OutcomeOK, time.Since(start))

	slog.InfoContext(ctx, "checkout committed",
		"method", "Service.ProcessCart",
		"checkout_id", checkoutID,
		"cart_id", state.Cart.ID,
		"invoice_id", state.Invoice.ID)

	s.notify(context.WithoutCancel(ctx), checkoutID, req, state)

	return state.Cart, nil
}

func (s *Service) notify(ctx context.Context, checkoutID string, req domain.CheckoutRequest, state steps.State) {
	to := req.Recipient(state.Customer)
	if to == "" {
		s.metrics.IncNotification(NotificationSkipped)
		slog.InfoContext(ctx, "no recipient, invoice not emailed",
			"method", "Service.notify",
			"checkout_id", checkoutID,
			"invoice_id", state.Invoice.ID)
		return
	}

	err := s.emailer.EmailInvoice(ctx, state.Invoice.ID, to, req.EmailSubject, req.EmailBody)
	if err != nil {
		s.metrics.IncNotification(NotificationFailed)
		slog.WarnContext(ctx, "invoice email failed",
			"method", "Service.notify",
			"checkout_id", checkoutID,
			"invoice_id", state.Invoice.ID,
			"to", to,
			"error", err)
		return
	}

	s.metrics.IncNotification(NotificationSent)
}

// classify keeps caller-facing errors as they are and turns everything else into a persistence failure.
func classify(err error) error {
	var invalid *domain.InvalidRequestError
	if errors.As(err, &invalid) {
		return invalid
	}

	var missing *domain.ReferentialIntegrityError
	if errors.As(err, &missing) {
		return missing
	}

	var persistence *domain.PersistenceError
	if errors.As(err, &persistence) {
		return persistence
	}

	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		return err
	}

	return &domain.PersistenceError{Op: "checkout", Err: err}
}

type nopMetrics struct{}

func (nopMetrics) ObserveCheckout(string, time.Duration) {}
func (nopMetrics) IncNotification(string)                {}
