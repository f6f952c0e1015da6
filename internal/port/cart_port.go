package port

import (
	"context"

	"github.com/nikolayk812/indukitchen/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, id int64) (domain.Cart, error)
	ListCarts(ctx context.Context) ([]domain.Cart, error)

	// CreateCart fails with *domain.ReferentialIntegrityError and writes nothing
	// when any of productIDs is not in the catalog.
	CreateCart(ctx context.Context, customerID string, productIDs []int64) (domain.Cart, error)

	// UpdateCart replaces the customer reference only.
	UpdateCart(ctx context.Context, id int64, customerID string) (domain.Cart, error)

	DeleteCart(ctx context.Context, id int64) error
}
