// Package local implements repository.Repository over a kv.Store: each
// collection is one JSON array under its storage key, rewritten wholesale
// on every mutation.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/kv"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

// Repository reads, modifies and rewrites a collection array. The mutex
// serializes read-modify-write within the process; two processes sharing
// one store can still lose writes.
type Repository[T domain.Record[T]] struct {
	store kv.Store
	key   string
	now   func() time.Time
	mu    sync.Mutex
}

// Option customizes a Repository.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the id source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a repository for the collection stored under key.
func New[T domain.Record[T]](store kv.Store, key string, opts ...Option) *Repository[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[T]{store: store, key: key, now: o.now}
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	return r.load(ctx)
}

func (r *Repository[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if it.GetID() == id {
			return it, nil
		}
	}
	return zero, fmt.Errorf("%s/%d: %w", r.key, id, repository.ErrNotFound)
}

// Create assigns a timestamp id, bumped past the largest id in use.
func (r *Repository[T]) Create(ctx context.Context, item T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	item = item.WithID(r.nextID(items))
	if err := r.save(ctx, append(items, item)); err != nil {
		return zero, err
	}
	return item, nil
}

func (r *Repository[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	items, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	for i, it := range items {
		if it.GetID() != id {
			continue
		}
		items[i] = item.WithID(id)
		if err := r.save(ctx, items); err != nil {
			return zero, err
		}
		return items[i], nil
	}
	return zero, fmt.Errorf("%s/%d: %w", r.key, id, repository.ErrNotFound)
}

func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.GetID() != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("%s/%d: %w", r.key, id, repository.ErrNotFound)
	}
	return r.save(ctx, kept)
}

// SeedIfEmpty writes items when the collection holds nothing yet, keeping
// their ids when set. It reports how many records were written.
func (r *Repository[T]) SeedIfEmpty(ctx context.Context, items []T) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	if len(current) > 0 || len(items) == 0 {
		return 0, nil
	}

	seeded := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetID() == 0 {
			it = it.WithID(r.nextID(seeded))
		}
		seeded = append(seeded, it)
	}
	if err := r.save(ctx, seeded); err != nil {
		return 0, err
	}
	return len(seeded), nil
}

// Key is the storage key of the collection.
func (r *Repository[T]) Key() string { return r.key }

func (r *Repository[T]) nextID(items []T) int64 {
	id := r.now().UnixMilli()
	for _, it := range items {
		if it.GetID() >= id {
			id = it.GetID() + 1
		}
	}
	return id
}

func (r *Repository[T]) load(ctx context.Context) ([]T, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, kv.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Repository[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}
