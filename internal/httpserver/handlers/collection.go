package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
	"github.com/MrSnakeDoc/backoffice/internal/validate"
)

// Collection serves the five REST operations of one resource.
type Collection[T domain.Record[T]] struct {
	res  domain.Resource
	repo repository.Repository[T]
	now  func() time.Time
	log  logger.Logger
}

func NewCollection[T domain.Record[T]](res domain.Resource, repo repository.Repository[T], now func() time.Time, log logger.Logger) *Collection[T] {
	if now == nil {
		now = time.Now
	}
	return &Collection[T]{res: res, repo: repo, now: now, log: log.With(logger.String("resource", res.Plural))}
}

// Mount registers the routes below res.Route.
func (c *Collection[T]) Mount(r chi.Router) {
	r.Route(c.res.Route, func(r chi.Router) {
		r.Get("/", c.List)
		r.Post("/", c.Create)
		r.Get("/{id}", c.Get)
		r.Put("/{id}", c.Update)
		r.Patch("/{id}", c.Update)
		r.Delete("/{id}", c.Delete)
	})
}

func (c *Collection[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.repo.List(r.Context())
	if err != nil {
		c.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *Collection[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := c.id(w, r)
	if !ok {
		return
	}
	item, err := c.repo.Get(r.Context(), id)
	if err != nil {
		c.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create stamps today's date on dated records that arrive without one.
func (c *Collection[T]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := decodeJSON(w, r, &item); err != nil {
		writeMessage(w, http.StatusBadRequest, msgBadJSON)
		return
	}
	if s, ok := any(item).(domain.Stamped[T]); ok && s.GetCreatedAt() == "" {
		item = s.WithCreatedAt(domain.Today(c.now()))
	}
	if err := validate.Struct(item); err != nil {
		c.fail(w, err)
		return
	}
	created, err := c.repo.Create(r.Context(), item.WithID(0))
	if err != nil {
		c.fail(w, err)
		return
	}
	c.log.Info("record created", logger.Int64("id", created.GetID()))
	writeJSON(w, http.StatusCreated, created)
}

// Update replaces the whole record.
func (c *Collection[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.id(w, r)
	if !ok {
		return
	}
	var item T
	if err := decodeJSON(w, r, &item); err != nil {
		writeMessage(w, http.StatusBadRequest, msgBadJSON)
		return
	}
	if err := validate.Struct(item); err != nil {
		c.fail(w, err)
		return
	}
	updated, err := c.repo.Update(r.Context(), id, item)
	if err != nil {
		c.fail(w, err)
		return
	}
	c.log.Info("record updated", logger.Int64("id", id))
	writeJSON(w, http.StatusOK, updated)
}

func (c *Collection[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.id(w, r)
	if !ok {
		return
	}
	if err := c.repo.Delete(r.Context(), id); err != nil {
		c.fail(w, err)
		return
	}
	c.log.Info("record deleted", logger.Int64("id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (c *Collection[T]) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}

func (c *Collection[T]) fail(w http.ResponseWriter, err error) {
	var fe validate.FieldErrors
	switch {
	case errors.As(err, &fe):
		writeMessage(w, http.StatusBadRequest, fe.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, c.res.Name+" not found.")
	default:
		c.log.Error("request failed", logger.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
	}
}
