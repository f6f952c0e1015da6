package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, description, price, stock, weight, image, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Stock,
		&i.Weight,
		&i.Image,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getProduct = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id int64) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, getProduct, id))
}

const listProducts = `
SELECT ` + productColumns + `
FROM products
ORDER BY id
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	return q.queryProducts(ctx, listProducts)
}

const getProductsByIDs = `
SELECT ` + productColumns + `
FROM products
WHERE id = ANY ($1::bigint[])
`

func (q *Queries) GetProductsByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	return q.queryProducts(ctx, getProductsByIDs, ids)
}

func (q *Queries) queryProducts(ctx context.Context, query string, args ...interface{}) ([]Product, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		i, err := scanProduct(rows)
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

const insertProduct = `
INSERT INTO products (name, description, price, stock, weight, image)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + productColumns

type InsertProductParams struct {
	Name        string
	Description *string
	Price       decimal.NullDecimal
	Stock       int32
	Weight      decimal.NullDecimal
	Image       *string
}

func (q *Queries) InsertProduct(ctx context.Context, arg InsertProductParams) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, insertProduct,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Stock,
		arg.Weight,
		arg.Image,
	))
}

const updateProduct = `
UPDATE products
SET name        = $2,
    description = $3,
    price       = $4,
    stock       = $5,
    weight      = $6,
    image       = $7,
    updated_at  = now()
WHERE id = $1
RETURNING ` + productColumns

type UpdateProductParams struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.NullDecimal
	Stock       int32
	Weight      decimal.NullDecimal
	Image       *string
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, updateProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.Stock,
		arg.Weight,
		arg.Image,
	))
}

const deleteProduct = `
DELETE FROM products
WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id int64) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteProduct, id)
}
