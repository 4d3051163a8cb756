// Package cache is the dashboard's query cache: last-known data per
// collection key, one in-flight fetch per key, explicit invalidation after
// mutations.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/MrSnakeDoc/backoffice/internal/logger"
)

// DefaultSize bounds the number of keys kept.
const DefaultSize = 64

// State is what a consumer renders: data, loading or error.
type State[T any] struct {
	Data      T
	HasData   bool
	IsLoading bool
	IsError   bool
	Err       error
	UpdatedAt time.Time
}

// Fetcher loads the value of one key.
type Fetcher[T any] func(ctx context.Context) (T, error)

type entry struct {
	data      any
	hasData   bool
	err       error
	stale     bool
	loading   bool
	gen       uint64
	updatedAt time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, *entry]
	group   singleflight.Group
	now     func() time.Time
	log     logger.Logger
}

type Option func(*Cache)

func WithLogger(l logger.Logger) Option {
	return func(c *Cache) { c.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a cache holding at most size keys (DefaultSize when <= 0).
func New(size int, opts ...Option) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, *entry](size)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	c := &Cache{entries: entries, now: time.Now, log: logger.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Use returns the cached state of key, fetching when there is no fresh
// value. Concurrent callers of the same key share one fetch.
//
// A failed fetch sticks: later calls return the same error without
// refetching until the key is invalidated. When ctx ends first the caller
// gets a loading state back, and the fetch still completes and fills the
// cache.
func Use[T any](ctx context.Context, c *Cache, key string, fetch Fetcher[T]) State[T] {
	c.mu.Lock()
	e := c.entry(key)
	if !e.stale {
		if e.err != nil {
			st := stateOf[T](e)
			c.mu.Unlock()
			return st
		}
		if e.hasData {
			st := stateOf[T](e)
			c.mu.Unlock()
			return st
		}
	}
	e.loading = true
	gen := e.gen
	last := stateOf[T](e)
	c.mu.Unlock()

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		v, err := fetch(detached)
		c.store(key, gen, v, err)
		return v, err
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			last.IsLoading = false
			last.IsError = true
			last.Err = res.Err
			return last
		}
		v, _ := res.Val.(T)
		return State[T]{Data: v, HasData: true, UpdatedAt: c.now()}
	case <-ctx.Done():
		last.IsLoading = true
		last.Err = ctx.Err()
		return last
	}
}

// Reload invalidates key and fetches it again.
func Reload[T any](ctx context.Context, c *Cache, key string, fetch Fetcher[T]) State[T] {
	c.Invalidate(key)
	return Use(ctx, c, key, fetch)
}

// Peek reports the current state of key without fetching.
func Peek[T any](c *Cache, key string) State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries.Peek(key)
	if !ok {
		return State[T]{}
	}
	return stateOf[T](e)
}

// Invalidate marks key stale so the next Use refetches. A fetch already in
// flight for key can no longer mark its result fresh.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(key)
}

// InvalidatePrefix invalidates every key starting with prefix, ex: "ads"
// covers "ads" and "ads/3".
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.entries.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.invalidateLocked(k)
		}
	}
}

// Len returns the number of keys held.
func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) invalidateLocked(key string) {
	e, ok := c.entries.Peek(key)
	if !ok {
		return
	}
	e.stale = true
	e.loading = false
	e.gen++
	c.group.Forget(key)
	c.log.Debug("cache invalidated", logger.String("key", key))
}

// entry returns the entry of key, creating it; c.mu must be held.
func (c *Cache) entry(key string) *entry {
	if e, ok := c.entries.Get(key); ok {
		return e
	}
	e := &entry{}
	c.entries.Add(key, e)
	return e
}

func (c *Cache) store(key string, gen uint64, v any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	if e.gen != gen {
		// Invalidated while in flight: the value may only fill an empty
		// entry, and the entry stays stale for the next Use.
		if err == nil && !e.hasData {
			e.data, e.hasData = v, true
		}
		return
	}

	e.loading = false
	e.stale = false
	e.updatedAt = c.now()
	if err != nil {
		e.err = err
		c.log.Warn("cache fetch failed", logger.String("key", key), logger.Error(err))
		return
	}
	e.data, e.hasData, e.err = v, true, nil
}

func stateOf[T any](e *entry) State[T] {
	st := State[T]{
		HasData:   e.hasData,
		IsLoading: e.loading,
		IsError:   e.err != nil,
		Err:       e.err,
		UpdatedAt: e.updatedAt,
	}
	if e.hasData {
		st.Data, _ = e.data.(T)
	}
	return st
}
