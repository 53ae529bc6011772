package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"relocation-estimate-service/internal/domain"
)

func testCache(t *testing.T) (*RedisFleetCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisFleetCache(client, 5*time.Minute), mr
}

func TestRedisFleetCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	fleet := []domain.Truck{
		{
			ID:             "t-1",
			Name:           "2t Short",
			CapacityPoints: 80,
			CostPerKm:      120,
			Availability: []time.Time{
				time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	if err := c.Put(ctx, fleet); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after put")
	}
	if len(got) != 1 || got[0].ID != "t-1" || got[0].CapacityPoints != 80 {
		t.Fatalf("snapshot mismatch: %+v", got)
	}
	if len(got[0].Availability) != 1 || !got[0].Availability[0].Equal(fleet[0].Availability[0]) {
		t.Fatalf("availability mismatch: %+v", got[0].Availability)
	}
}

func TestRedisFleetCacheMiss(t *testing.T) {
	c, _ := testCache(t)

	_, ok, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss on empty cache")
	}
}

func TestRedisFleetCacheExpiry(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, []domain.Truck{{ID: "t-1", Name: "A", CapacityPoints: 10, CostPerKm: 1}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(6 * time.Minute)

	_, ok, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss after TTL expiry")
	}
}

func TestRedisFleetCacheCorruptPayload(t *testing.T) {
	c, mr := testCache(t)

	if err := mr.Set(fleetSnapshotKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	_, _, err := c.Get(context.Background())
	if err == nil {
		t.Fatal("expected decode error for corrupt payload")
	}
}
