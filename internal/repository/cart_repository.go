package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/indukitchen/internal/db"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
)

type cartRepository struct {
	dbtx db.DBTX
	q    *db.Queries
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		dbtx: pool,
		q:    db.New(pool),
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		dbtx: tx, // use provided transaction instead
		q:    db.New(tx),
	}
}

func (r *cartRepository) GetCart(ctx context.Context, id int64) (domain.Cart, error) {
	dbCart, err := r.q.GetCart(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Cart{}, fmt.Errorf("q.GetCart: %w", domain.NotFound("cart", id))
		}
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	return mapDBCartToDomain(dbCart), nil
}

func (r *cartRepository) ListCarts(ctx context.Context) ([]domain.Cart, error) {
	dbCarts, err := r.q.ListCarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCarts: %w", err)
	}

	return lo.Map(dbCarts, func(c db.Cart, _ int) domain.Cart {
		return mapDBCartToDomain(c)
	}), nil
}

func (r *cartRepository) CreateCart(ctx context.Context, customerID string, productIDs []int64) (domain.Cart, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return domain.Cart{}, domain.NewInvalidRequest("customer id required")
	}

	cart, err := r.withTxCart(ctx, func(q *db.Queries) (domain.Cart, error) {
		catalog := &productRepository{q: q}

		found, err := catalog.LookupProducts(ctx, productIDs)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("catalog.LookupProducts: %w", err)
		}

		missing := lo.Uniq(lo.Filter(productIDs, func(id int64, _ int) bool {
			_, ok := found[id]
			return !ok
		}))
		if len(missing) > 0 {
			return domain.Cart{}, &domain.ReferentialIntegrityError{MissingIDs: missing}
		}

		dbCart, err := q.InsertCart(ctx, customerID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.Cart{}, &domain.ReferentialIntegrityError{MissingCustomerID: customerID}
			}
			return domain.Cart{}, fmt.Errorf("q.InsertCart: %w", err)
		}

		if len(productIDs) > 0 {
			n, err := q.InsertCartProducts(ctx, db.InsertCartProductsParams{
				CartID:     dbCart.ID,
				ProductIds: productIDs,
			})
			if err != nil {
				return domain.Cart{}, fmt.Errorf("q.InsertCartProducts: %w", err)
			}
			if n != int64(len(productIDs)) {
				return domain.Cart{}, fmt.Errorf("q.InsertCartProducts: inserted %d of %d links", n, len(productIDs))
			}
		}

		dbCart.ProductIds = slices.Clone(productIDs)

		return mapDBCartToDomain(dbCart), nil
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("r.withTxCart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) UpdateCart(ctx context.Context, id int64, customerID string) (domain.Cart, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return domain.Cart{}, domain.NewInvalidRequest("customer id required")
	}

	cart, err := r.withTxCart(ctx, func(q *db.Queries) (domain.Cart, error) {
		cmdTag, err := q.UpdateCartCustomer(ctx, db.UpdateCartCustomerParams{
			ID:         id,
			CustomerID: customerID,
		})
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.Cart{}, &domain.ReferentialIntegrityError{MissingCustomerID: customerID}
			}
			return domain.Cart{}, fmt.Errorf("q.UpdateCartCustomer: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return domain.Cart{}, fmt.Errorf("q.UpdateCartCustomer: %w", domain.NotFound("cart", id))
		}

		dbCart, err := q.GetCart(ctx, id)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
		}

		return mapDBCartToDomain(dbCart), nil
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("r.withTxCart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, id int64) error {
	cmdTag, err := r.q.DeleteCart(ctx, id)
	if err != nil {
		return fmt.Errorf("q.DeleteCart: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteCart: %w", domain.NotFound("cart", id))
	}

	return nil
}

func (r *cartRepository) withTxCart(ctx context.Context, fn func(q *db.Queries) (domain.Cart, error)) (domain.Cart, error) {
	return withTx(ctx, r.dbtx, fn)
}

func mapDBCartToDomain(c db.Cart) domain.Cart {
	return domain.Cart{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		ProductIDs: nilSliceIfEmpty(c.ProductIds),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
