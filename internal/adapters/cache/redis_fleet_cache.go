package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"relocation-estimate-service/internal/domain"
	"relocation-estimate-service/internal/platform/obs"
)

const fleetSnapshotKey = "fleet:snapshot"

// RedisFleetCache stores a JSON-encoded snapshot of the fleet roster with
// a TTL, so assignment requests don't hit Postgres on every call.
type RedisFleetCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisFleetCache(client *redis.Client, ttl time.Duration) *RedisFleetCache {
	return &RedisFleetCache{Client: client, TTL: ttl}
}

// Fetch the cached fleet snapshot. A missing key is a miss, not an error.
func (c *RedisFleetCache) Get(ctx context.Context) (_ []domain.Truck, _ bool, err error) {
	defer obs.Time(ctx, "fleet.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("fleet cache: client is nil")
	}

	payload, err := c.Client.Get(ctx, fleetSnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get fleet cache: %w", err)
	}

	var fleet []domain.Truck
	if err := json.Unmarshal(payload, &fleet); err != nil {
		return nil, false, fmt.Errorf("get fleet cache: decode snapshot: %w", err)
	}

	return fleet, true, nil
}

// Store the fleet snapshot, replacing any previous one.
func (c *RedisFleetCache) Put(ctx context.Context, fleet []domain.Truck) error {
	if c.Client == nil {
		return errors.New("fleet cache: client is nil")
	}

	payload, err := json.Marshal(fleet)
	if err != nil {
		return fmt.Errorf("put fleet cache: encode snapshot: %w", err)
	}

	if err := c.Client.Set(ctx, fleetSnapshotKey, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("put fleet cache: %w", err)
	}

	return nil
}
