package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookrec/internal/platform/googlebooks"
	"bookrec/internal/platform/logger"
	"bookrec/internal/platform/metrics"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by a KV when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// KV is a byte-valued store with per-key expiry.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisKV adapts a go-redis client to KV.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// CachedProvider serves repeated provider queries from a KV. Cache failures
// fall through to the provider; provider errors are never cached.
type CachedProvider struct {
	next Provider
	kv   KV
	ttl  time.Duration
	log  *logger.Logger
}

func NewCachedProvider(next Provider, kv KV, ttl time.Duration, log *logger.Logger) *CachedProvider {
	return &CachedProvider{next: next, kv: kv, ttl: ttl, log: log.With("component", "query_cache")}
}

func (c *CachedProvider) Volumes(ctx context.Context, query string, maxResults int) ([]googlebooks.Volume, error) {
	key := cacheKey(query, maxResults)

	raw, err := c.kv.Get(ctx, key)
	switch {
	case err == nil:
		var vols []googlebooks.Volume
		uerr := json.Unmarshal(raw, &vols)
		if uerr == nil {
			metrics.QueryCacheLookups.WithLabelValues("hit").Inc()
			return vols, nil
		}
		metrics.QueryCacheLookups.WithLabelValues("error").Inc()
		c.log.Warn("query cache entry unreadable", "key", key, "error", uerr)
	case errors.Is(err, ErrCacheMiss):
		metrics.QueryCacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.QueryCacheLookups.WithLabelValues("error").Inc()
		c.log.Warn("query cache read failed", "key", key, "error", err)
	}

	vols, err := c.next.Volumes(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(vols)
	if err != nil {
		c.log.Warn("query cache encode failed", "key", key, "error", err)
		return vols, nil
	}
	if err := c.kv.Set(ctx, key, payload, c.ttl); err != nil {
		c.log.Warn("query cache write failed", "key", key, "error", err)
	}
	return vols, nil
}

func cacheKey(query string, maxResults int) string {
	return fmt.Sprintf("bookrec:volumes:%d:%s", maxResults, strings.ToLower(strings.TrimSpace(query)))
}
