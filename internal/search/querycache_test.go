package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bookrec/internal/platform/googlebooks"
	"bookrec/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func TestCachedProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		p := newFakeProvider()
		rated := vol("a", "Dune", "Science Fiction")
		rated.VolumeInfo.AverageRating = googlebooks.Rating{Value: 4.5, Valid: true}
		p.results["dune"] = []googlebooks.Volume{rated, vol("b", "Messiah")}
		kv := newMemKV()
		cp := NewCachedProvider(p, kv, 15*time.Minute, logger.NewNop())

		first, err := cp.Volumes(ctx, "dune", 10)
		require.NoError(t, err)
		second, err := cp.Volumes(ctx, "Dune ", 10)
		require.NoError(t, err)

		assert.Len(t, p.calls, 1)
		assert.Equal(t, first, second)
		assert.Equal(t, 15*time.Minute, kv.ttls[cacheKey("dune", 10)])
		assert.True(t, second[0].VolumeInfo.AverageRating.Valid)
		assert.False(t, second[1].VolumeInfo.AverageRating.Valid)
	})

	t.Run("different limits are distinct entries", func(t *testing.T) {
		p := newFakeProvider()
		p.results["dune"] = vols("d", 5)
		cp := NewCachedProvider(p, newMemKV(), time.Minute, logger.NewNop())

		_, _ = cp.Volumes(ctx, "dune", 10)
		_, _ = cp.Volumes(ctx, "dune", 20)

		assert.Len(t, p.calls, 2)
	})

	t.Run("provider errors are not cached", func(t *testing.T) {
		p := newFakeProvider()
		p.errs["dune"] = errors.New("boom")
		kv := newMemKV()
		cp := NewCachedProvider(p, kv, time.Minute, logger.NewNop())

		_, err := cp.Volumes(ctx, "dune", 10)

		assert.Error(t, err)
		assert.Empty(t, kv.data)
	})

	t.Run("cache outage falls through", func(t *testing.T) {
		p := newFakeProvider()
		p.results["dune"] = vols("d", 3)
		kv := newMemKV()
		kv.getErr = errors.New("redis down")
		cp := NewCachedProvider(p, kv, time.Minute, logger.NewNop())

		got, err := cp.Volumes(ctx, "dune", 10)

		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("corrupt entry falls through", func(t *testing.T) {
		p := newFakeProvider()
		p.results["dune"] = vols("d", 2)
		kv := newMemKV()
		kv.data[cacheKey("dune", 10)] = []byte("{not json")
		cp := NewCachedProvider(p, kv, time.Minute, logger.NewNop())

		got, err := cp.Volumes(ctx, "dune", 10)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Len(t, p.calls, 1)
	})
}
