package port

import (
	"context"

	"github.com/nikolayk812/indukitchen/internal/domain"
)

type CustomerRepository interface {
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// SaveCustomer inserts the customer or overwrites the one with the same id.
	SaveCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error)

	DeleteCustomer(ctx context.Context, id string) error
}
