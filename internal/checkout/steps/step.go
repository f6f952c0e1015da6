package steps

import (
	"context"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
)

type Step interface {
	Name() string
	Run(ctx context.Context, state *State) error
}

// State is shared by the steps of one checkout. Stores are bound to the checkout transaction.
type State struct {
	Stores  port.Stores
	Request domain.CheckoutRequest

	Customer domain.Customer
	Cart     domain.Cart
	Invoice  domain.Invoice
}
