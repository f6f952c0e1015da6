package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/indukitchen/internal/db"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
)

type customerRepository struct {
	q *db.Queries
}

func NewCustomer(pool *pgxpool.Pool) port.CustomerRepository {
	return &customerRepository{
		q: db.New(pool),
	}
}

func NewCustomerWithTx(tx pgx.Tx) port.CustomerRepository {
	return &customerRepository{
		q: db.New(tx),
	}
}

func (r *customerRepository) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	dbCustomer, err := r.q.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, fmt.Errorf("q.GetCustomer: %w", domain.NotFound("customer", id))
		}
		return domain.Customer{}, fmt.Errorf("q.GetCustomer: %w", err)
	}

	return mapDBCustomerToDomain(dbCustomer), nil
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	dbCustomers, err := r.q.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCustomers: %w", err)
	}

	return lo.Map(dbCustomers, func(c db.Customer, _ int) domain.Customer {
		return mapDBCustomerToDomain(c)
	}), nil
}

func (r *customerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	if err := customer.Validate(); err != nil {
		return domain.Customer{}, err
	}

	dbCustomer, err := r.q.UpsertCustomer(ctx, db.UpsertCustomerParams{
		ID:      strings.TrimSpace(customer.ID),
		Name:    customer.Name,
		Address: nilIfBlank(customer.Address),
		Email:   nilIfBlank(customer.Email),
		Phone:   nilIfBlank(customer.Phone),
	})
	if err != nil {
		return domain.Customer{}, fmt.Errorf("q.UpsertCustomer: %w", err)
	}

	return mapDBCustomerToDomain(dbCustomer), nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}

	cmdTag, err := r.q.DeleteCustomer(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("q.DeleteCustomer: customer[%s] has carts: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("q.DeleteCustomer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteCustomer: %w", domain.NotFound("customer", id))
	}

	return nil
}

func mapDBCustomerToDomain(c db.Customer) domain.Customer {
	return domain.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Address:   lo.FromPtr(c.Address),
		Email:     lo.FromPtr(c.Email),
		Phone:     lo.FromPtr(c.Phone),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func nilIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return lo.ToPtr(s)
}
