package domain_test

import (
	"strings"
	"testing"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		wantErr string
	}{
		{name: "valid", product: domain.Product{Name: "Olla", Price: price("10.55")}},
		{name: "no price", product: domain.Product{Name: "Olla"}},
		{name: "whole price", product: domain.Product{Name: "Olla", Price: price("10")}},
		{name: "trailing zeros beyond cents", product: domain.Product{Name: "Olla", Price: price("10.5500")}},
		{name: "blank name", product: domain.Product{Name: " "}, wantErr: "product name required"},
		{name: "negative price", product: domain.Product{Name: "Olla", Price: price("-1")}, wantErr: "price must not be negative"},
		{name: "sub-cent price", product: domain.Product{Name: "Olla", Price: price("10.555")}, wantErr: "price must have at most 2 decimals"},
		{name: "negative stock", product: domain.Product{Name: "Olla", Stock: -1}, wantErr: "stock must not be negative"},
		{
			name:    "long description",
			product: domain.Product{Name: "Olla", Description: strings.Repeat("a", 151)},
			wantErr: "description exceeds 150 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.EqualError(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}
