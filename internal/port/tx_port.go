package port

import "context"

// Stores are bound to one transaction.
type Stores struct {
	Customers CustomerRepository
	Carts     CartRepository
	Invoices  InvoiceRepository
}

type Transactor interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
