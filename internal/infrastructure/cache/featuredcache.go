package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/infrastructure/persistence/mappers"
	"toolvault/internal/infrastructure/persistence/models"
)

const featuredCacheKey = "catalog:featured"

// RedisFeaturedCache caches the featured tools listing in Redis. Entries are
// the persistence models serialized as JSON, so a cached read reconstructs
// the same domain objects a store read would.
type RedisFeaturedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFeaturedCache(client *redis.Client, ttl time.Duration) *RedisFeaturedCache {
	return &RedisFeaturedCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisFeaturedCache) Get(ctx context.Context) ([]*catalog.Tool, bool, error) {
	data, err := c.client.Get(ctx, featuredCacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read featured cache: %w", err)
	}

	var ms []*models.ToolModel
	if err := json.Unmarshal([]byte(data), &ms); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal featured cache: %w", err)
	}

	tools, err := mappers.ToolsToDomain(ms)
	if err != nil {
		return nil, false, fmt.Errorf("failed to map cached tools: %w", err)
	}
	return tools, true, nil
}

func (c *RedisFeaturedCache) Set(ctx context.Context, tools []*catalog.Tool) error {
	ms := make([]*models.ToolModel, 0, len(tools))
	for _, tool := range tools {
		m, err := mappers.ToolToModel(tool)
		if err != nil {
			return fmt.Errorf("failed to map tool for cache: %w", err)
		}
		ms = append(ms, m)
	}

	data, err := json.Marshal(ms)
	if err != nil {
		return fmt.Errorf("failed to marshal featured cache: %w", err)
	}

	if err := c.client.Set(ctx, featuredCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write featured cache: %w", err)
	}
	return nil
}

func (c *RedisFeaturedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, featuredCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate featured cache: %w", err)
	}
	return nil
}
