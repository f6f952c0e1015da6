package domain_test

import (
	"testing"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "zero", input: "0", want: "0.00"},
		{name: "two decimals kept", input: "12.75", want: "12.75"},
		{name: "tax of 12.75", input: "2.4225", want: "2.42"},
		{name: "total with tax", input: "15.1725", want: "15.17"},
		{name: "thousands grouped", input: "1234567.891", want: "1,234,567.89"},
		{name: "exact thousand", input: "1000", want: "1,000.00"},
		{name: "half to even rounds down", input: "0.125", want: "0.12"},
		{name: "half to even rounds up", input: "0.135", want: "0.14"},
		{name: "negative", input: "-1234.5", want: "-1,234.50"},
		{name: "negative rounding to zero", input: "-0.001", want: "0.00"},
		{name: "below int64 max", input: "999999999999999999.994", want: "999,999,999,999,999,999.99"},
		{name: "past int64", input: "12345678901234567890.5", want: "12,345,678,901,234,567,890.50"},
		{name: "past int64 with zero groups", input: "10000000000000000000000", want: "10,000,000,000,000,000,000,000.00"},
		{name: "negative past int64", input: "-98765432109876543210.125", want: "-98,765,432,109,876,543,210.12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FormatAmount(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}
