// Package remote implements repository.Repository against the admin REST
// API: one HTTP call per operation, no retry, no caching.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/backoffice/internal/apiclient"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

// Repository maps the five operations onto <route> and <route>/{id}.
type Repository[T any] struct {
	client *apiclient.Client
	route  string
}

func New[T any](client *apiclient.Client, route string) *Repository[T] {
	return &Repository[T]{client: client, route: route}
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.Do(ctx, http.MethodGet, r.route, nil, &items); err != nil {
		return nil, mapErr(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Repository[T]) Get(ctx context.Context, id int64) (T, error) {
	var item T
	if err := r.client.Do(ctx, http.MethodGet, r.itemPath(id), nil, &item); err != nil {
		var zero T
		return zero, mapErr(err)
	}
	return item, nil
}

func (r *Repository[T]) Create(ctx context.Context, item T) (T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodPost, r.route, item, &out); err != nil {
		var zero T
		return zero, mapErr(err)
	}
	return out, nil
}

func (r *Repository[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	var out T
	if err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), item, &out); err != nil {
		var zero T
		return zero, mapErr(err)
	}
	return out, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	return mapErr(r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil))
}

func (r *Repository[T]) itemPath(id int64) string {
	return r.route + "/" + strconv.FormatInt(id, 10)
}

// mapErr lets callers test for repository.ErrNotFound regardless of backend.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apiclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", repository.ErrNotFound, err)
	}
	return err
}
