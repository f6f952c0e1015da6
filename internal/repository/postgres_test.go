package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/indukitchen/internal/db"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway postgres with the schema migrated.
func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("indukitchen"),
		postgres.WithUsername("indukitchen"),
		postgres.WithPassword("indukitchen"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	if err := db.Migrate(connStr); err != nil {
		return container, "", fmt.Errorf("db.Migrate: %w", err)
	}

	return container, connStr, nil
}

func assertProducts(t *testing.T, expected, actual []domain.Product) {
	t.Helper()

	opts := cmp.Options{
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
		cmpopts.IgnoreFields(domain.Product{}, "CreatedAt", "UpdatedAt"),
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE invoices, cart_products, carts, products, customers RESTART IDENTITY CASCADE")
	return err
}

func fakeCustomer() domain.Customer {
	return domain.Customer{
		ID:      gofakeit.Numerify("##########"),
		Name:    gofakeit.Name(),
		Address: gofakeit.Street(),
		Email:   gofakeit.Email(),
		Phone:   gofakeit.Phone(),
	}
}

func fakeProduct() domain.Product {
	return domain.Product{
		Name:        gofakeit.ProductName(),
		Description: gofakeit.Sentence(8),
		Price:       lo.ToPtr(decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2)),
		Stock:       int32(gofakeit.Number(0, 100)),
		Weight:      lo.ToPtr(decimal.NewFromFloat(gofakeit.Float64Range(0.1, 20)).Round(3)),
		Image:       gofakeit.URL(),
	}
}
