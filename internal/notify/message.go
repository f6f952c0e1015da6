package notify

import "context"

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Message is one email to a single recipient.
type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

type Transport interface {
	Deliver(ctx context.Context, msg Message) error
}
