package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/indukitchen/internal/db"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	dbProduct, err := r.q.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("q.GetProduct: %w", domain.NotFound("product", id))
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapDBProductToDomain(dbProduct), nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	dbProducts, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	return mapDBProductsToDomain(dbProducts), nil
}

func (r *productRepository) LookupProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	result := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	dbProducts, err := r.q.GetProductsByIDs(ctx, lo.Uniq(ids))
	if err != nil {
		return nil, fmt.Errorf("q.GetProductsByIDs: %w", err)
	}

	for _, p := range dbProducts {
		result[p.ID] = mapDBProductToDomain(p)
	}

	return result, nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := product.Validate(); err != nil {
		return domain.Product{}, err
	}

	dbProduct, err := r.q.InsertProduct(ctx, db.InsertProductParams{
		Name:        product.Name,
		Description: nilIfBlank(product.Description),
		Price:       toNullDecimal(product.Price),
		Stock:       product.Stock,
		Weight:      toNullDecimal(product.Weight),
		Image:       nilIfBlank(product.Image),
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.InsertProduct: %w", err)
	}

	return mapDBProductToDomain(dbProduct), nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := product.Validate(); err != nil {
		return domain.Product{}, err
	}

	dbProduct, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:          product.ID,
		Name:        product.Name,
		Description: nilIfBlank(product.Description),
		Price:       toNullDecimal(product.Price),
		Stock:       product.Stock,
		Weight:      toNullDecimal(product.Weight),
		Image:       nilIfBlank(product.Image),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("q.UpdateProduct: %w", domain.NotFound("product", product.ID))
		}
		return domain.Product{}, fmt.Errorf("q.UpdateProduct: %w", err)
	}

	return mapDBProductToDomain(dbProduct), nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	cmdTag, err := r.q.DeleteProduct(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("q.DeleteProduct: product[%d] is in a cart: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("q.DeleteProduct: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteProduct: %w", domain.NotFound("product", id))
	}

	return nil
}

func mapDBProductToDomain(p db.Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: lo.FromPtr(p.Description),
		Price:       fromNullDecimal(p.Price),
		Stock:       p.Stock,
		Weight:      fromNullDecimal(p.Weight),
		Image:       lo.FromPtr(p.Image),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func mapDBProductsToDomain(rows []db.Product) []domain.Product {
	return lo.Map(rows, func(p db.Product, _ int) domain.Product {
		return mapDBProductToDomain(p)
	})
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return lo.ToPtr(d.Decimal)
}
