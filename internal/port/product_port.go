package port

import (
	"context"

	"github.com/nikolayk812/indukitchen/internal/domain"
)

// Catalog resolves product ids in one batch. Ids that do not exist are absent from the result.
type Catalog interface {
	LookupProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
}

type ProductRepository interface {
	Catalog

	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)

	InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)

	DeleteProduct(ctx context.Context, id int64) error
}
