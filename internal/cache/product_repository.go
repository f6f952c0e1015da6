package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"golang.org/x/sync/singleflight"
)

type ProductCache interface {
	Get(ctx context.Context, id int64) (domain.Product, error)
	Set(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id int64) error
}

// productRepository reads single products through the cache and evicts them on writes.
// Cache failures are logged and fall through to the wrapped repository.
type productRepository struct {
	port.ProductRepository

	cache ProductCache
	sfg   singleflight.Group
}

func NewProductRepository(repo port.ProductRepository, cache ProductCache) port.ProductRepository {
	return &productRepository{
		ProductRepository: repo,
		cache:             cache,
	}
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	// The load is shared by every caller waiting on the key.
	loadCtx := context.WithoutCancel(ctx)

	v, err, _ := r.sfg.Do(strconv.FormatInt(id, 10), func() (any, error) {
		product, err := r.cache.Get(loadCtx, id)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			slog.Warn("product cache read failed",
				"method", "productRepository.GetProduct",
				"id", id,
				"error", err)
		}

		product, err = r.ProductRepository.GetProduct(loadCtx, id)
		if err != nil {
			return domain.Product{}, err
		}

		if err := r.cache.Set(loadCtx, product); err != nil {
			slog.Warn("product cache write failed",
				"method", "productRepository.GetProduct",
				"id", id,
				"error", err)
		}

		return product, nil
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.GetProduct: %w", err)
	}

	return v.(domain.Product), nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.ProductRepository.UpdateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}

	r.evict(ctx, product.ID)

	return updated, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	if err := r.ProductRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}

	r.evict(ctx, id)

	return nil
}

func (r *productRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, id); err != nil {
		slog.Warn("product cache eviction failed",
			"method", "productRepository.evict",
			"id", id,
			"error", err)
	}
}
