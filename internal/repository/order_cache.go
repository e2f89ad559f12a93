package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/tracking-service/internal/domain"
)

const orderCacheKeyPrefix = "tracking:order:"

// cachedOrderRepository is a read-through cache over an OrderRepository.
// It caches the raw order snapshot only; permission decisions are made per
// request against the snapshot's owner, never cached. Not-found results are
// not cached so new containers become visible immediately. Any cache failure
// falls through to the inner repository.
type cachedOrderRepository struct {
	inner  OrderRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedOrderRepository decorates repo with a redis snapshot cache.
// A nil client or non-positive ttl returns repo unchanged.
func NewCachedOrderRepository(repo OrderRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) OrderRepository {
	if client == nil || ttl <= 0 {
		return repo
	}
	return &cachedOrderRepository{inner: repo, client: client, ttl: ttl, logger: logger}
}

func (r *cachedOrderRepository) FindByContainer(ctx context.Context, containerNumber string) (*domain.Order, error) {
	key := orderCacheKeyPrefix + containerNumber

	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var order domain.Order
		if err := json.Unmarshal(raw, &order); err == nil {
			return &order, nil
		}
		r.logger.Warn("discarding undecodable cached order", zap.String("container", containerNumber))
	}

	order, err := r.inner.FindByContainer(ctx, containerNumber)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(order); err == nil {
		if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
			r.logger.Warn("order cache write failed", zap.Error(err))
		}
	}
	return order, nil
}
