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

type paymentMethodRepository struct {
	q *db.Queries
}

func NewPaymentMethod(pool *pgxpool.Pool) port.PaymentMethodRepository {
	return &paymentMethodRepository{
		q: db.New(pool),
	}
}

func (r *paymentMethodRepository) GetPaymentMethod(ctx context.Context, id int32) (domain.PaymentMethod, error) {
	pm, err := r.q.GetPaymentMethod(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PaymentMethod{}, fmt.Errorf("q.GetPaymentMethod: %w", domain.NotFound("payment method", id))
		}
		return domain.PaymentMethod{}, fmt.Errorf("q.GetPaymentMethod: %w", err)
	}

	return domain.PaymentMethod(pm), nil
}

func (r *paymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	pms, err := r.q.ListPaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListPaymentMethods: %w", err)
	}

	return lo.Map(pms, func(pm db.PaymentMethod, _ int) domain.PaymentMethod {
		return domain.PaymentMethod(pm)
	}), nil
}
