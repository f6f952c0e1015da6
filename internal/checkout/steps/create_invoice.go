package steps

import (
	"context"
	"fmt"
)

type CreateInvoice struct{}

func (s CreateInvoice) Name() string {
	return "create_invoice"
}

func (s CreateInvoice) Run(ctx context.Context, state *State) error {
	if state.Cart.ID == 0 {
		return fmt.Errorf("cart is not created")
	}

	invoice, err := state.Stores.Invoices.CreateInvoice(ctx, state.Cart.ID, state.Request.PaymentMethodID)
	if err != nil {
		return fmt.Errorf("Invoices.CreateInvoice: %w", err)
	}

	state.Invoice = invoice

	return nil
}
