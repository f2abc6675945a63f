// Package realmclient is the Go client for the realmkeeper API. Reads go through a
// cache keyed by request path; successful writes invalidate the keys they make
// stale so the next read refetches.
package realmclient

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
	"github.com/realmkeeper/realmkeeper/pkg/lock"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"golang.org/x/sync/singleflight"
)

type Client struct {
	rc     *resty.Client
	apiKey string
	cache  qcache.Cache
	group  singleflight.Group
	// keys serializes storing a fetched body with invalidating the same key.
	keys *lock.KeyLocker

	mu         sync.Mutex
	generation map[string]uint64
	inflight   map[string]int
}

type Option func(*Client)

func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
		c.rc.SetHeader("apikey", apiKey)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rc.SetTimeout(timeout)
	}
}

// WithCache replaces the default in-process cache, for example to share one
// between clients.
func WithCache(cache qcache.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		rc: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetTimeout(30 * time.Second),
		cache:      qcache.NewMemoryCache(0),
		keys:       lock.NewKeyLocker(),
		generation: make(map[string]uint64),
		inflight:   make(map[string]int),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Invalidate drops keys from the cache. A fetch for one of the keys that is
// already in flight won't store its result.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	err := c.keys.WithLocks(keys, func() error {
		c.mu.Lock()
		for _, key := range keys {
			c.generation[key]++
			c.group.Forget(key)
		}
		c.mu.Unlock()

		return c.cache.Invalidate(ctx, keys...)
	})
	if err != nil {
		clog.For("realmclient").Warnf("Cache invalidate %v failed: %s", keys, err)
	}
}

// Loading reports whether a fetch for key is outstanding.
func (c *Client) Loading(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight[key] > 0
}

// Cached reports whether key has a cached response.
func (c *Client) Cached(ctx context.Context, key string) bool {
	_, found, _ := c.cache.Get(ctx, key)
	return found
}

// fetch decodes the response for key into out, from the cache when present.
// Concurrent fetches of the same key share one request.
func (c *Client) fetch(ctx context.Context, key string, out interface{}) error {
	if body, found, _ := c.cache.Get(ctx, key); found {
		return json.Unmarshal(body, out)
	}

	c.mu.Lock()
	gen := c.generation[key]
	c.inflight[key]++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inflight[key]--
		if c.inflight[key] == 0 {
			delete(c.inflight, key)
		}
		c.mu.Unlock()
	}()

	// The request is shared by every caller waiting on key, so one caller
	// cancelling must not fail the others. A cancelled caller stops waiting.
	shared := context.WithoutCancel(ctx)
	results := c.group.DoChan(key, func() (interface{}, error) {
		resp, err := c.rc.R().SetContext(shared).Get(key)
		if err != nil {
			return nil, transportError(err)
		}

		if resp.IsError() {
			return nil, toErrorFromResponse(resp)
		}

		body := resp.Body()

		err = c.keys.WithLock(key, func() error {
			c.mu.Lock()
			current := c.generation[key] == gen
			c.mu.Unlock()
			if !current {
				return nil
			}
			return c.cache.Set(shared, key, body)
		})
		if err != nil {
			clog.For("realmclient").Warnf("Cache set %s failed: %s", key, err)
		}

		return body, nil
	})

	select {
	case <-ctx.Done():
		return transportError(ctx.Err())
	case res := <-results:
		if res.Err != nil {
			return res.Err
		}
		return json.Unmarshal(res.Val.([]byte), out)
	}
}

// send performs a mutation. keysFor computes the keys to invalidate from the
// decoded response; it is only called when the server accepted the request.
func (c *Client) send(ctx context.Context, method, path string, body, out interface{}, keysFor func() []string) error {
	req := c.rc.R().SetContext(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return transportError(err)
	}

	if resp.IsError() {
		return toErrorFromResponse(resp)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return transportError(err)
		}
	}

	if keysFor != nil {
		c.Invalidate(ctx, keysFor()...)
	}

	return nil
}
