package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const cartSelect = `
SELECT c.id,
       c.customer_id,
       COALESCE(array_agg(cp.product_id ORDER BY cp.id) FILTER (WHERE cp.id IS NOT NULL), '{}')::bigint[] AS product_ids,
       c.created_at,
       c.updated_at
FROM carts c
         LEFT JOIN cart_products cp ON cp.cart_id = c.id
`

func scanCart(row interface{ Scan(dest ...any) error }) (Cart, error) {
	var i Cart
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.ProductIds,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCart = cartSelect + `
WHERE c.id = $1
GROUP BY c.id
`

func (q *Queries) GetCart(ctx context.Context, id int64) (Cart, error) {
	return scanCart(q.db.QueryRow(ctx, getCart, id))
}

const listCarts = cartSelect + `
GROUP BY c.id
ORDER BY c.id
`

func (q *Queries) ListCarts(ctx context.Context) ([]Cart, error) {
	rows, err := q.db.Query(ctx, listCarts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Cart
	for rows.Next() {
		i, err := scanCart(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertCart = `
INSERT INTO carts (customer_id)
VALUES ($1)
RETURNING id, customer_id, created_at, updated_at
`

func (q *Queries) InsertCart(ctx context.Context, customerID string) (Cart, error) {
	row := q.db.QueryRow(ctx, insertCart, customerID)
	var i Cart
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

type InsertCartProductsParams struct {
	CartID     int64
	ProductIds []int64
}

// InsertCartProducts writes one link row per id, in the given order.
func (q *Queries) InsertCartProducts(ctx context.Context, arg InsertCartProductsParams) (int64, error) {
	rows := make([][]any, 0, len(arg.ProductIds))
	for _, productID := range arg.ProductIds {
		rows = append(rows, []any{arg.CartID, productID})
	}

	return q.db.CopyFrom(ctx,
		pgx.Identifier{"cart_products"},
		[]string{"cart_id", "product_id"},
		pgx.CopyFromRows(rows),
	)
}

const updateCartCustomer = `
UPDATE carts
SET customer_id = $2,
    updated_at  = now()
WHERE id = $1
`

type UpdateCartCustomerParams struct {
	ID         int64
	CustomerID string
}

func (q *Queries) UpdateCartCustomer(ctx context.Context, arg UpdateCartCustomerParams) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, updateCartCustomer, arg.ID, arg.CustomerID)
}

const deleteCart = `
DELETE FROM carts
WHERE id = $1
`

func (q *Queries) DeleteCart(ctx context.Context, id int64) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteCart, id)
}
