package notify

import (
	"context"
	"log/slog"
)

// LogTransport only logs messages, for environments without a mail provider.
type LogTransport struct{}

func (LogTransport) Deliver(ctx context.Context, msg Message) error {
	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.Name)
	}

	slog.InfoContext(ctx, "email not sent, log transport",
		"method", "LogTransport.Deliver",
		"to", msg.To,
		"subject", msg.Subject,
		"attachments", names)

	return nil
}
