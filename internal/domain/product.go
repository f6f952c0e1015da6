package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxDescriptionLength = 150
	priceScale           = 2
)

type Product struct {
	ID          int64
	Name        string
	Description string
	// Price is nil when the catalog has no price for the product.
	Price  *decimal.Decimal
	Stock  int32
	Weight *decimal.Decimal
	Image  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnitPrice treats a missing price as zero.
func (p Product) UnitPrice() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewInvalidRequest("product name required")
	}

	if utf8.RuneCountInString(p.Description) > maxDescriptionLength {
		return NewInvalidRequest(fmt.Sprintf("description exceeds %d characters", maxDescriptionLength))
	}

	if p.Price != nil {
		if p.Price.IsNegative() {
			return NewInvalidRequest("price must not be negative")
		}
		// NUMERIC(12,2) would round anything finer.
		if !p.Price.Equal(p.Price.Truncate(priceScale)) {
			return NewInvalidRequest(fmt.Sprintf("price must have at most %d decimals", priceScale))
		}
	}

	if p.Stock < 0 {
		return NewInvalidRequest("stock must not be negative")
	}

	return nil
}
