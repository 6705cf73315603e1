package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/shared/logger"
)

const placeKeyPrefix = "place:"

var _ place.Lookup = (*RedisPlaceCache)(nil)

// RedisPlaceCache is a read-through cache in front of the place catalog.
// Redis failures degrade to a direct lookup rather than failing the request.
type RedisPlaceCache struct {
	client *redis.Client
	source place.Lookup
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisPlaceCache(client *redis.Client, source place.Lookup, ttl time.Duration, log logger.Interface) *RedisPlaceCache {
	return &RedisPlaceCache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: log,
	}
}

func (c *RedisPlaceCache) GetByID(ctx context.Context, placeID uint) (*place.Place, error) {
	key := c.key(placeID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p place.Place
		if jsonErr := json.Unmarshal(data, &p); jsonErr == nil {
			return &p, nil
		}
		c.logger.Warnw("discarding malformed cached place", "place_id", placeID)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("place cache read failed", "place_id", placeID, "error", err)
	}

	p, err := c.source.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if err := c.store(ctx, key, p); err != nil {
		c.logger.Warnw("place cache write failed", "place_id", placeID, "error", err)
	}

	return p, nil
}

// Invalidate drops a cached place so the next lookup reads the catalog.
func (c *RedisPlaceCache) Invalidate(ctx context.Context, placeID uint) error {
	if err := c.client.Del(ctx, c.key(placeID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate place %d: %w", placeID, err)
	}
	return nil
}

func (c *RedisPlaceCache) store(ctx context.Context, key string, p *place.Place) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal place: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisPlaceCache) key(placeID uint) string {
	return fmt.Sprintf("%s%d", placeKeyPrefix, placeID)
}
