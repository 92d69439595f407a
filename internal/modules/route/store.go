// README: Redis-backed cache for computed route results.
package route

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Store{redis: redis, ttl: ttl}
}

func cacheKey(from, to string, algo Algorithm) string {
	return fmt.Sprintf("route:%s:%s:%s", from, to, algo)
}

// GetCached returns a previously computed result. Any redis or decode error
// is treated as a miss; the engine recomputes.
func (s *Store) GetCached(ctx context.Context, from, to string, algo Algorithm) (RouteResult, bool) {
	val, err := s.redis.Get(ctx, cacheKey(from, to, algo)).Result()
	if err != nil {
		return RouteResult{}, false
	}
	var res RouteResult
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return RouteResult{}, false
	}
	return res, true
}

func (s *Store) PutCached(ctx context.Context, from, to string, algo Algorithm, res RouteResult) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, cacheKey(from, to, algo), raw, s.ttl).Err()
}

// Invalidate drops every cached result. Called when the admin console
// changes the connection catalogue.
func (s *Store) Invalidate(ctx context.Context) error {
	iter := s.redis.Scan(ctx, 0, "route:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
