package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ACBRI/veritas.ia/internal/domain"
)

// OffenseTypeCache keeps the (rarely changing) offense catalog as one TTL'd
// JSON blob so catalog reads don't hit Postgres on every request.
type OffenseTypeCache struct {
	client *goredis.Client
	key    string
}

func NewOffenseTypeCache(r *Redis) *OffenseTypeCache {
	return &OffenseTypeCache{
		client: r.Client,
		key:    "offense_types:all",
	}
}

// Get returns the cached catalog, or (nil, nil) on a cache miss.
func (c *OffenseTypeCache) Get(ctx context.Context) ([]*domain.OffenseType, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var types []*domain.OffenseType
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, err
	}

	return types, nil
}

func (c *OffenseTypeCache) Set(ctx context.Context, types []*domain.OffenseType, ttl time.Duration) error {
	b, err := json.Marshal(types)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
