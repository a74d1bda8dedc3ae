package storefront

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCache_CancelledCallerDoesNotFailOthers(t *testing.T) {
	cache := newQueryCache(time.Minute, NewMetrics(prometheus.NewRegistry()))
	started := make(chan struct{})
	release := make(chan struct{})
	var fetches int32
	fetch := func(ctx context.Context) (json.RawMessage, error) {
		if atomic.AddInt32(&fetches, 1) == 1 {
			close(started)
		}
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return json.RawMessage(`{"menu":null}`), nil
	}
	vars := map[string]any{"handle": "footer"}

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.load(ctx, "Footer", vars, fetch)
		firstErr <- err
	}()
	<-started

	type result struct {
		data json.RawMessage
		err  error
	}
	second := make(chan result, 1)
	go func() {
		data, err := cache.load(context.Background(), "Footer", vars, fetch)
		second <- result{data, err}
	}()
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(cache.metrics.cacheMisses.WithLabelValues("Footer")) == 2
	}, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled, "the cancelled caller returns at once")

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.JSONEq(t, `{"menu":null}`, string(got.data))
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches))

	cached, ok := cache.entries.Get(cacheKey("Footer", vars))
	require.True(t, ok, "the shared result is cached")
	assert.JSONEq(t, `{"menu":null}`, string(cached))
}

func TestCacheKey_SortsVariables(t *testing.T) {
	a := cacheKey("Header", map[string]any{"b": 2, "a": "x"})
	b := cacheKey("Header", map[string]any{"a": "x", "b": 2})

	assert.Equal(t, a, b)
	assert.Equal(t, "Header|a=x|b=2", a)
	assert.NotEqual(t, a, cacheKey("Footer", map[string]any{"a": "x", "b": 2}))
}
