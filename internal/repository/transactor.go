package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/indukitchen/internal/port"
)

type transactor struct {
	pool *pgxpool.Pool
}

func NewTransactor(pool *pgxpool.Pool) port.Transactor {
	return &transactor{pool: pool}
}

func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, stores port.Stores) error) error {
	_, err := inTx(ctx, t.pool, func(tx pgx.Tx) (struct{}, error) {
		stores := port.Stores{
			Customers: NewCustomerWithTx(tx),
			Carts:     NewCartWithTx(tx),
			Invoices:  NewInvoiceWithTx(tx),
		}

		return struct{}{}, fn(ctx, stores)
	})

	return err
}
