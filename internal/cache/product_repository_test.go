package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducts struct {
	port.ProductRepository

	gets     atomic.Int32
	delay    time.Duration
	products map[int64]domain.Product
}

func (f *fakeProducts) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	f.gets.Add(1)

	select {
	case <-time.After(f.delay):
	case <-ctx.Done():
		return domain.Product{}, ctx.Err()
	}

	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.NotFound("product", id)
	}
	return p, nil
}

func (f *fakeProducts) UpdateProduct(_ context.Context, p domain.Product) (domain.Product, error) {
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProducts) DeleteProduct(_ context.Context, id int64) error {
	delete(f.products, id)
	return nil
}

func TestGetProduct_ReadThrough(t *testing.T) {
	redisCache, mr := setupTestRedis(t)
	fake := &fakeProducts{products: map[int64]domain.Product{7: testProduct()}}
	repo := NewProductRepository(fake, redisCache)
	ctx := t.Context()

	first, err := repo.GetProduct(ctx, 7)
	require.NoError(t, err)
	assert.True(t, mr.Exists(cacheKey(7)))

	second, err := repo.GetProduct(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, int32(1), fake.gets.Load())
}

func TestGetProduct_NotFoundNotCached(t *testing.T) {
	redisCache, mr := setupTestRedis(t)
	repo := NewProductRepository(&fakeProducts{products: map[int64]domain.Product{}}, redisCache)

	_, err := repo.GetProduct(t.Context(), 404)
	require.EqualError(t, err, "r.GetProduct: product[404]: not found")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, mr.Exists(cacheKey(404)))
}

func TestGetProduct_ConcurrentMissesCollapse(t *testing.T) {
	redisCache, _ := setupTestRedis(t)
	fake := &fakeProducts{
		delay:    50 * time.Millisecond,
		products: map[int64]domain.Product{7: testProduct()},
	}
	repo := NewProductRepository(fake, redisCache)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.GetProduct(context.Background(), 7)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Less(t, fake.gets.Load(), int32(10))
}

func TestGetProduct_CancelledCallerDoesNotFailWaiters(t *testing.T) {
	redisCache, _ := setupTestRedis(t)
	fake := &fakeProducts{
		delay:    100 * time.Millisecond,
		products: map[int64]domain.Product{7: testProduct()},
	}
	repo := NewProductRepository(fake, redisCache)

	firstCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[0] = repo.GetProduct(firstCtx, 7)
	}()

	time.Sleep(20 * time.Millisecond)

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[1] = repo.GetProduct(context.Background(), 7)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(1), fake.gets.Load())
}

func TestGetProduct_RedisDownFallsThrough(t *testing.T) {
	redisCache, mr := setupTestRedis(t)
	fake := &fakeProducts{products: map[int64]domain.Product{7: testProduct()}}
	repo := NewProductRepository(fake, redisCache)

	mr.SetError("ERR server is down")

	got, err := repo.GetProduct(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Olla a presion", got.Name)
}

func TestWritesEvict(t *testing.T) {
	redisCache, mr := setupTestRedis(t)
	fake := &fakeProducts{products: map[int64]domain.Product{7: testProduct()}}
	repo := NewProductRepository(fake, redisCache)
	ctx := t.Context()

	_, err := repo.GetProduct(ctx, 7)
	require.NoError(t, err)
	require.True(t, mr.Exists(cacheKey(7)))

	updated := testProduct()
	updated.Name = "Olla express"
	_, err = repo.UpdateProduct(ctx, updated)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cacheKey(7)))

	got, err := repo.GetProduct(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Olla express", got.Name)

	require.NoError(t, repo.DeleteProduct(ctx, 7))
	assert.False(t, mr.Exists(cacheKey(7)))
}
