package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// ErrCacheMiss is returned when a key is not cached.
var ErrCacheMiss = errors.New("not found in cache")

// ProductCacheRepository caches product details in Redis.
type ProductCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached products
}

// NewProductCacheRepository creates a new repository instance with the given TTL.
func NewProductCacheRepository(client *redis.Client, expiration time.Duration) *ProductCacheRepository {
	return &ProductCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// GetProduct returns a cached product or ErrCacheMiss.
func (r *ProductCacheRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	key := productKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Debugw("product cache lookup", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("product %s: %w", id, ErrCacheMiss)
		}
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(val, &product); err != nil {
		logger.Log.Warnw("dropping undecodable cached product", "key", key, "error", err)
		_ = r.client.Del(ctx, key).Err()
		return nil, fmt.Errorf("product %s: %w", id, ErrCacheMiss)
	}

	logger.Log.Debugw("product cache hit", "key", key)
	return &product, nil
}

// SetProduct caches a product with expiration.
func (r *ProductCacheRepository) SetProduct(ctx context.Context, product *models.Product) error {
	key := productKey(product.ID)

	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("product cached", "key", key, "ttl", r.exp, "error", err)
	return err
}
