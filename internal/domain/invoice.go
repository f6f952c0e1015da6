package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the IVA applied to the invoice subtotal.
var TaxRate = decimal.RequireFromString("0.19")

// Invoice references exactly one cart. CartID becomes 0 once the cart is deleted.
// PaymentMethodID is stored as given and is not checked against payment methods.
type Invoice struct {
	ID              int64
	CartID          int64
	PaymentMethodID *int32

	CreatedAt time.Time
}

func (i Invoice) PDFName() string {
	return fmt.Sprintf("factura-%d.pdf", i.ID)
}

// ResolvedInvoice is an invoice with everything needed to render it, loaded up front.
// Cart is nil when the cart no longer exists; Customer is nil when the cart has none.
type ResolvedInvoice struct {
	Invoice  Invoice
	Cart     *Cart
	Customer *Customer
	// Products holds one entry per cart link row, in link order.
	Products []Product
}

type InvoiceLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

type InvoiceTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func (r ResolvedInvoice) Lines() []InvoiceLine {
	lines := make([]InvoiceLine, 0, len(r.Products))

	// each link row is one unit
	const quantity = 1

	for _, p := range r.Products {
		unit := p.UnitPrice()
		lines = append(lines, InvoiceLine{
			Name:      p.Name,
			Quantity:  quantity,
			UnitPrice: unit,
			Total:     unit.Mul(decimal.NewFromInt(quantity)),
		})
	}

	return lines
}

// Totals are exact; rounding happens only when amounts are formatted.
func (r ResolvedInvoice) Totals() InvoiceTotals {
	subtotal := decimal.Zero
	for _, line := range r.Lines() {
		subtotal = subtotal.Add(line.Total)
	}

	tax := subtotal.Mul(TaxRate)

	return InvoiceTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
