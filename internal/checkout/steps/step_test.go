package steps_test

import (
	"testing"

	"github.com/nikolayk812/indukitchen/internal/checkout/steps"
	"github.com/stretchr/testify/require"
)

func TestStepPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		step    steps.Step
		wantErr string
	}{
		{
			name:    "ensure_customer without customer",
			step:    steps.EnsureCustomer{},
			wantErr: "customer is nil",
		},
		{
			name:    "create_cart before customer",
			step:    steps.CreateCart{},
			wantErr: "customer is not saved",
		},
		{
			name:    "create_invoice before cart",
			step:    steps.CreateInvoice{},
			wantErr: "cart is not created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Run(t.Context(), &steps.State{})
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
