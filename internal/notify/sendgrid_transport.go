package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"log/slog"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

type SendGridTransport struct {
	apiKey   string
	host     string
	fromName string
	fromAddr string
}

func NewSendGridTransport(apiKey, fromAddr, fromName string) (*SendGridTransport, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid api key is empty")
	}
	if fromAddr == "" {
		return nil, fmt.Errorf("from address is empty")
	}

	return &SendGridTransport{
		apiKey:   apiKey,
		host:     sendGridHost,
		fromName: fromName,
		fromAddr: fromAddr,
	}, nil
}

// WithHost points the transport at another API host, e.g. a test server.
func (t *SendGridTransport) WithHost(host string) *SendGridTransport {
	t.host = host
	return t
}

func (t *SendGridTransport) Deliver(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("to address is empty")
	}

	email := mail.NewSingleEmail(
		mail.NewEmail(t.fromName, t.fromAddr),
		msg.Subject,
		mail.NewEmail("", msg.To),
		msg.Body,
		fmt.Sprintf("<p>%s</p>", html.EscapeString(msg.Body)),
	)

	for _, a := range msg.Attachments {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(a.Data))
		attachment.SetType(a.ContentType)
		attachment.SetFilename(a.Name)
		attachment.SetDisposition("attachment")
		email.AddAttachment(attachment)
	}

	// a client per call, Client.SendWithContext mutates its request body
	request := sendgrid.GetRequest(t.apiKey, sendGridEndpoint, t.host)
	request.Method = rest.Post
	client := &sendgrid.Client{Request: request}

	response, err := client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("client.SendWithContext: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	slog.InfoContext(ctx, "email sent",
		"method", "SendGridTransport.Deliver",
		"status", response.StatusCode,
		"to", msg.To)

	return nil
}
