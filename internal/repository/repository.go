// Package repository is the uniform data-access contract of the dashboard:
// five operations per entity collection, served either from the local kv
// store or from the REST API.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get, Update and Delete for an unknown id. The
// collection is left unchanged.
var ErrNotFound = errors.New("record not found")

// Repository is the per-entity client. Update replaces the whole record:
// fields missing from the payload are wiped, not merged.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, item T) (T, error)
	Delete(ctx context.Context, id int64) error
}
