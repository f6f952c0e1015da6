package steps

import (
	"context"
	"fmt"
)

type CreateCart struct{}

func (s CreateCart) Name() string {
	return "create_cart"
}

func (s CreateCart) Run(ctx context.Context, state *State) error {
	if state.Customer.ID == "" {
		return fmt.Errorf("customer is not saved")
	}

	cart, err := state.Stores.Carts.CreateCart(ctx, state.Customer.ID, state.Request.ProductIDs)
	if err != nil {
		return fmt.Errorf("Carts.CreateCart: %w", err)
	}

	state.Cart = cart

	return nil
}
