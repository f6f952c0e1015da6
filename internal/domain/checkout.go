package domain

import "strings"

type CheckoutRequest struct {
	Customer        *Customer
	ProductIDs      []int64
	PaymentMethodID *int32

	EmailTo      string
	EmailSubject string
	EmailBody    string
}

// Validate checks the request before anything is written. The first failing check wins.
func (r CheckoutRequest) Validate() error {
	if r.Customer == nil {
		return NewInvalidRequest("customer required")
	}

	if len(r.ProductIDs) == 0 {
		return NewInvalidRequest("at least one product required")
	}

	if err := r.Customer.Validate(); err != nil {
		return err
	}

	return nil
}

// Recipient picks EmailTo, then the saved customer's email. Empty means nobody to notify.
func (r CheckoutRequest) Recipient(saved Customer) string {
	if to := strings.TrimSpace(r.EmailTo); to != "" {
		return to
	}

	return strings.TrimSpace(saved.Email)
}
