package steps

import (
	"context"
	"fmt"
)

type EnsureCustomer struct{}

func (s EnsureCustomer) Name() string {
	return "ensure_customer"
}

func (s EnsureCustomer) Run(ctx context.Context, state *State) error {
	if state.Request.Customer == nil {
		return fmt.Errorf("customer is nil")
	}

	customer, err := state.Stores.Customers.SaveCustomer(ctx, *state.Request.Customer)
	if err != nil {
		return fmt.Errorf("Customers.SaveCustomer: %w", err)
	}

	state.Customer = customer

	return nil
}
