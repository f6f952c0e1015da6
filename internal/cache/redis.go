package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// maxJitter spreads expirations of products cached at the same moment.
const maxJitter = 5

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCache(client *redis.Client, baseTTL time.Duration) *RedisCache {
	if baseTTL <= 0 {
		baseTTL = 15 * time.Minute
	}

	return &RedisCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

func (r *RedisCache) Get(ctx context.Context, id int64) (domain.Product, error) {
	data, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Product{}, ErrCacheMiss
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("redis get failed: %w", err)
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return domain.Product{}, fmt.Errorf("unmarshal product failed: %w", err)
	}

	return product, nil
}

func (r *RedisCache) Set(ctx context.Context, product domain.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("marshal product failed: %w", err)
	}

	jitter := time.Duration(rand.IntN(maxJitter)) * time.Minute
	if err := r.client.Set(ctx, cacheKey(product.ID), data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (r *RedisCache) Delete(ctx context.Context, id int64) error {
	if err := r.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func cacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
