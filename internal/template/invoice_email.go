package template

import (
	"fmt"
	"strings"
)

const (
	invoiceSubjectTemplate = "invoice_subject.tmpl"
	invoiceBodyTemplate    = "invoice_body.tmpl"
)

type InvoiceEmail struct {
	Subject string
	Body    string
}

func BuildInvoiceEmailData(invoiceID int64) map[string]any {
	return map[string]any{
		"InvoiceID": invoiceID,
	}
}

// InvoiceEmail keeps the given subject and body and fills the blank ones from templates.
func (e Engine) InvoiceEmail(invoiceID int64, subject, body string) (InvoiceEmail, error) {
	data := BuildInvoiceEmailData(invoiceID)

	if strings.TrimSpace(subject) == "" {
		s, err := e.Execute(invoiceSubjectTemplate, data)
		if err != nil {
			return InvoiceEmail{}, fmt.Errorf("e.Execute: %w", err)
		}
		subject = s
	}

	if strings.TrimSpace(body) == "" {
		b, err := e.Execute(invoiceBodyTemplate, data)
		if err != nil {
			return InvoiceEmail{}, fmt.Errorf("e.Execute: %w", err)
		}
		body = b
	}

	return InvoiceEmail{Subject: subject, Body: body}, nil
}
