package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// cacheEntries bounds the number of cached layout responses.
const cacheEntries = 64

// queryCache caches the data of read-only layout queries and collapses
// concurrent identical requests into one.
type queryCache struct {
	entries *lru.LRU[string, json.RawMessage]
	group   singleflight.Group
	metrics *Metrics
}

func newQueryCache(ttl time.Duration, metrics *Metrics) *queryCache {
	return &queryCache{
		entries: lru.NewLRU[string, json.RawMessage](cacheEntries, nil, ttl),
		metrics: metrics,
	}
}

// load returns cached data for the operation and variables, calling fetch on a miss.
func (c *queryCache) load(
	ctx context.Context,
	operation string,
	vars map[string]any,
	fetch func(ctx context.Context) (json.RawMessage, error),
) (json.RawMessage, error) {
	key := cacheKey(operation, vars)
	if data, ok := c.entries.Get(key); ok {
		c.metrics.cacheHits.WithLabelValues(operation).Inc()
		return data, nil
	}
	c.metrics.cacheMisses.WithLabelValues(operation).Inc()

	// The shared fetch outlives any single caller; each caller waits on its own context.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		data, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, data)
		return data, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(json.RawMessage), nil
	}
}

func (c *queryCache) purge() {
	c.entries.Purge()
}

func cacheKey(operation string, vars map[string]any) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(operation)
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%v", k, vars[k])
	}
	return b.String()
}
