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
)

type invoiceRepository struct {
	q *db.Queries
}

func NewInvoice(pool *pgxpool.Pool) port.InvoiceRepository {
	return &invoiceRepository{
		q: db.New(pool),
	}
}

func NewInvoiceWithTx(tx pgx.Tx) port.InvoiceRepository {
	return &invoiceRepository{
		q: db.New(tx),
	}
}

func (r *invoiceRepository) GetInvoice(ctx context.Context, id int64) (domain.Invoice, error) {
	dbInvoice, err := r.q.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, fmt.Errorf("q.GetInvoice: %w", domain.NotFound("invoice", id))
		}
		return domain.Invoice{}, fmt.Errorf("q.GetInvoice: %w", err)
	}

	return mapDBInvoiceToDomain(dbInvoice), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	dbInvoices, err := r.q.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListInvoices: %w", err)
	}

	return lo.Map(dbInvoices, func(i db.Invoice, _ int) domain.Invoice {
		return mapDBInvoiceToDomain(i)
	}), nil
}

func (r *invoiceRepository) GetResolvedInvoice(ctx context.Context, id int64) (domain.ResolvedInvoice, error) {
	var ri domain.ResolvedInvoice

	rows, err := r.q.GetResolvedInvoice(ctx, id)
	if err != nil {
		return ri, fmt.Errorf("q.GetResolvedInvoice: %w", err)
	}

	if len(rows) == 0 {
		return ri, fmt.Errorf("q.GetResolvedInvoice: %w", domain.NotFound("invoice", id))
	}

	// invoice, cart and customer columns repeat on every row
	first := rows[0]

	ri.Invoice = domain.Invoice{
		ID:              first.ID,
		CartID:          lo.FromPtr(first.CartID),
		PaymentMethodID: first.PaymentMethodID,
		CreatedAt:       first.CreatedAt,
	}

	if first.CartID == nil || first.CustomerID == nil {
		return ri, nil
	}

	ri.Cart = &domain.Cart{
		ID:         *first.CartID,
		CustomerID: *first.CustomerID,
		CreatedAt:  lo.FromPtr(first.CartCreatedAt),
		UpdatedAt:  lo.FromPtr(first.CartUpdatedAt),
	}

	if first.CustomerName != nil {
		ri.Customer = &domain.Customer{
			ID:      *first.CustomerID,
			Name:    *first.CustomerName,
			Address: lo.FromPtr(first.CustomerAddress),
			Email:   lo.FromPtr(first.CustomerEmail),
			Phone:   lo.FromPtr(first.CustomerPhone),
		}
	}

	for _, row := range rows {
		if row.LinkID == nil || row.ProductID == nil {
			continue
		}

		ri.Cart.ProductIDs = append(ri.Cart.ProductIDs, *row.ProductID)
		ri.Products = append(ri.Products, mapResolvedInvoiceRowToProduct(row))
	}

	return ri, nil
}

func (r *invoiceRepository) CreateInvoice(ctx context.Context, cartID int64, paymentMethodID *int32) (domain.Invoice, error) {
	dbInvoice, err := r.q.InsertInvoice(ctx, db.InsertInvoiceParams{
		CartID:          cartID,
		PaymentMethodID: paymentMethodID,
	})
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.Invoice{}, fmt.Errorf("q.InsertInvoice: %w", domain.NotFound("cart", cartID))
		case isUniqueViolation(err):
			return domain.Invoice{}, fmt.Errorf("q.InsertInvoice: cart[%d] already invoiced: %w", cartID, domain.ErrConflict)
		}
		return domain.Invoice{}, fmt.Errorf("q.InsertInvoice: %w", err)
	}

	return mapDBInvoiceToDomain(dbInvoice), nil
}

func (r *invoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	cmdTag, err := r.q.DeleteInvoice(ctx, id)
	if err != nil {
		return fmt.Errorf("q.DeleteInvoice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteInvoice: %w", domain.NotFound("invoice", id))
	}

	return nil
}

func mapDBInvoiceToDomain(i db.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:              i.ID,
		CartID:          lo.FromPtr(i.CartID),
		PaymentMethodID: i.PaymentMethodID,
		CreatedAt:       i.CreatedAt,
	}
}

func mapResolvedInvoiceRowToProduct(row db.GetResolvedInvoiceRow) domain.Product {
	return domain.Product{
		ID:          lo.FromPtr(row.ProductID),
		Name:        lo.FromPtr(row.ProductName),
		Description: lo.FromPtr(row.ProductDescription),
		Price:       fromNullDecimal(row.ProductPrice),
		Stock:       lo.FromPtr(row.ProductStock),
		Weight:      fromNullDecimal(row.ProductWeight),
		Image:       lo.FromPtr(row.ProductImage),
	}
}
