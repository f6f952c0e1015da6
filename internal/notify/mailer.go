package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/sony/gobreaker/v2"
)

const pdfContentType = "application/pdf"

type MailerConfig struct {
	// SendTimeout bounds a single delivery, zero means no extra bound.
	SendTimeout time.Duration

	// FailureThreshold consecutive failures open the breaker for OpenTimeout.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

func DefaultMailerConfig() MailerConfig {
	return MailerConfig{
		SendTimeout:      10 * time.Second,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

// Mailer sends invoice emails through a Transport guarded by a circuit breaker.
type Mailer struct {
	transport Transport
	breaker   *gobreaker.CircuitBreaker[struct{}]
	timeout   time.Duration
}

var _ port.Notifier = (*Mailer)(nil)

func NewMailer(transport Transport, cfg MailerConfig) (*Mailer, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport is nil")
	}
	if cfg.FailureThreshold == 0 {
		return nil, fmt.Errorf("failure threshold is zero")
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "mail-transport",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				"method", "Mailer.breaker",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	})

	return &Mailer{
		transport: transport,
		breaker:   breaker,
		timeout:   cfg.SendTimeout,
	}, nil
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string, attachment []byte, attachmentName string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return &domain.DeliveryError{Err: fmt.Errorf("recipient is empty")}
	}

	msg := Message{
		To:      to,
		Subject: subject,
		Body:    body,
	}
	if len(attachment) > 0 {
		msg.Attachments = []Attachment{{
			Name:        attachmentName,
			ContentType: pdfContentType,
			Data:        attachment,
		}}
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	_, err := m.breaker.Execute(func() (struct{}, error) {
		if err := m.transport.Deliver(ctx, msg); err != nil {
			return struct{}{}, fmt.Errorf("transport.Deliver: %w", err)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return &domain.DeliveryError{To: to, Err: err}
	}

	return nil
}
