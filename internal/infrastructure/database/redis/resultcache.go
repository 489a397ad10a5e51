package redis

import (
	"context"
	"time"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// ResultCache caches persisted assessment results by id.  Results are
// immutable once written, so a generous TTL is safe.
type ResultCache struct {
	cache Cache
	ttl   time.Duration
}

func NewResultCache(client *Client, log logging.Logger) *ResultCache {
	return &ResultCache{
		cache: NewCache(client, log, WithPrefix(client.KeyPrefix()+"result:")),
		ttl:   time.Hour,
	}
}

// GetOrLoadResult reads a result through the cache.  On a miss the load
// function is invoked — concurrent misses for the same id collapse into a
// single load — and its result is stored before being returned.  A cache
// failure degrades to loading from the source directly.
func (c *ResultCache) GetOrLoadResult(ctx context.Context, id string, load func(ctx context.Context) (*assessment.Result, error)) (*assessment.Result, error) {
	var result assessment.Result
	err := c.cache.GetOrSet(ctx, id, &result, c.ttl, func(ctx context.Context) (interface{}, error) {
		return load(ctx)
	})
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeCacheError) || errors.IsCode(err, errors.ErrCodeSerialization) {
			return load(ctx)
		}
		return nil, err
	}
	return &result, nil
}

func (c *ResultCache) StoreResult(ctx context.Context, result *assessment.Result) error {
	return c.cache.Set(ctx, result.ID, result, c.ttl)
}
