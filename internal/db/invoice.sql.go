package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const getInvoice = `
SELECT id, cart_id, payment_method_id, created_at
FROM invoices
WHERE id = $1
`

func (q *Queries) GetInvoice(ctx context.Context, id int64) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoice, id)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.CartID,
		&i.PaymentMethodID,
		&i.CreatedAt,
	)
	return i, err
}

const listInvoices = `
SELECT id, cart_id, payment_method_id, created_at
FROM invoices
ORDER BY id
`

func (q *Queries) ListInvoices(ctx context.Context) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		var i Invoice
		if err := rows.Scan(
			&i.ID,
			&i.CartID,
			&i.PaymentMethodID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertInvoice = `
INSERT INTO invoices (cart_id, payment_method_id)
VALUES ($1, $2)
RETURNING id, cart_id, payment_method_id, created_at
`

type InsertInvoiceParams struct {
	CartID          int64
	PaymentMethodID *int32
}

func (q *Queries) InsertInvoice(ctx context.Context, arg InsertInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, insertInvoice, arg.CartID, arg.PaymentMethodID)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.CartID,
		&i.PaymentMethodID,
		&i.CreatedAt,
	)
	return i, err
}

const deleteInvoice = `
DELETE FROM invoices
WHERE id = $1
`

func (q *Queries) DeleteInvoice(ctx context.Context, id int64) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteInvoice, id)
}

const getResolvedInvoice = `
SELECT i.id,
       i.cart_id,
       i.payment_method_id,
       i.created_at,
       c.customer_id,
       c.created_at,
       c.updated_at,
       cu.name,
       cu.address,
       cu.email,
       cu.phone,
       cp.id,
       p.id,
       p.name,
       p.description,
       p.price,
       p.stock,
       p.weight,
       p.image
FROM invoices i
         LEFT JOIN carts c ON c.id = i.cart_id
         LEFT JOIN customers cu ON cu.id = c.customer_id
         LEFT JOIN cart_products cp ON cp.cart_id = c.id
         LEFT JOIN products p ON p.id = cp.product_id
WHERE i.id = $1
ORDER BY cp.id
`

// GetResolvedInvoiceRow is one invoice/link pair. Cart, customer and product
// columns are nil when the left join found nothing.
type GetResolvedInvoiceRow struct {
	ID                 int64
	CartID             *int64
	PaymentMethodID    *int32
	CreatedAt          time.Time
	CustomerID         *string
	CartCreatedAt      *time.Time
	CartUpdatedAt      *time.Time
	CustomerName       *string
	CustomerAddress    *string
	CustomerEmail      *string
	CustomerPhone      *string
	LinkID             *int64
	ProductID          *int64
	ProductName        *string
	ProductDescription *string
	ProductPrice       decimal.NullDecimal
	ProductStock       *int32
	ProductWeight      decimal.NullDecimal
	ProductImage       *string
}

func (q *Queries) GetResolvedInvoice(ctx context.Context, id int64) ([]GetResolvedInvoiceRow, error) {
	rows, err := q.db.Query(ctx, getResolvedInvoice, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetResolvedInvoiceRow
	for rows.Next() {
		var i GetResolvedInvoiceRow
		if err := rows.Scan(
			&i.ID,
			&i.CartID,
			&i.PaymentMethodID,
			&i.CreatedAt,
			&i.CustomerID,
			&i.CartCreatedAt,
			&i.CartUpdatedAt,
			&i.CustomerName,
			&i.CustomerAddress,
			&i.CustomerEmail,
			&i.CustomerPhone,
			&i.LinkID,
			&i.ProductID,
			&i.ProductName,
			&i.ProductDescription,
			&i.ProductPrice,
			&i.ProductStock,
			&i.ProductWeight,
			&i.ProductImage,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
