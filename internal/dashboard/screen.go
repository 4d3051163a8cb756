// Package dashboard is the list screen of every collection: cached load,
// card rendering with summary statistics and the create/edit/delete
// mutations that invalidate the cache once acknowledged.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/cache"
	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/form"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

// Item is a record that renders as a card.
type Item[T any] interface {
	domain.Record[T]
	domain.Carded
}

// StatsFunc reduces a loaded collection to its summary figures.
type StatsFunc[T any] func(items []T, now time.Time) []Stat

// Screen is the list screen of one collection.
type Screen[T Item[T]] struct {
	res   domain.Resource
	repo  repository.Repository[T]
	cache *cache.Cache
	codec form.Codec[T]
	stats StatsFunc[T]
	order func([]T)
	now   func() time.Time
	log   logger.Logger
}

type ScreenOption[T Item[T]] func(*Screen[T])

func WithStats[T Item[T]](fn StatsFunc[T]) ScreenOption[T] {
	return func(s *Screen[T]) { s.stats = fn }
}

// WithOrder sorts a loaded list in place before rendering.
func WithOrder[T Item[T]](fn func([]T)) ScreenOption[T] {
	return func(s *Screen[T]) { s.order = fn }
}

func WithScreenClock[T Item[T]](now func() time.Time) ScreenOption[T] {
	return func(s *Screen[T]) { s.now = now }
}

func WithScreenLogger[T Item[T]](l logger.Logger) ScreenOption[T] {
	return func(s *Screen[T]) { s.log = l }
}

func NewScreen[T Item[T]](res domain.Resource, repo repository.Repository[T], c *cache.Cache, codec form.Codec[T], opts ...ScreenOption[T]) *Screen[T] {
	s := &Screen[T]{res: res, repo: repo, cache: c, codec: codec, now: time.Now, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Screen[T]) Resource() domain.Resource { return s.res }

func (s *Screen[T]) detailKey(id int64) string {
	return fmt.Sprintf("%s/%d", s.res.CacheKey(), id)
}

// Load returns the cached collection, fetching it when stale.
func (s *Screen[T]) Load(ctx context.Context) cache.State[[]T] {
	return cache.Use(ctx, s.cache, s.res.CacheKey(), s.repo.List)
}

// Reload drops the cached collection and fetches it again.
func (s *Screen[T]) Reload(ctx context.Context) cache.State[[]T] {
	return cache.Reload(ctx, s.cache, s.res.CacheKey(), s.repo.List)
}

// Detail returns one record through the cache.
func (s *Screen[T]) Detail(ctx context.Context, id int64) cache.State[T] {
	return cache.Use(ctx, s.cache, s.detailKey(id), func(ctx context.Context) (T, error) {
		return s.repo.Get(ctx, id)
	})
}

// Stats loads the collection and reduces it. A screen without statistics
// reports the total only.
func (s *Screen[T]) Stats(ctx context.Context) ([]Stat, error) {
	st := s.Load(ctx)
	if st.IsError {
		return nil, st.Err
	}
	if !st.HasData {
		return nil, fmt.Errorf("%s still loading", s.res.Plural)
	}
	return s.reduce(st.Data), nil
}

func (s *Screen[T]) reduce(items []T) []Stat {
	if s.stats == nil {
		return []Stat{count("Total "+s.res.Plural, len(items))}
	}
	return s.stats(items, s.now())
}

// Create submits values through a fresh create dialog.
func (s *Screen[T]) Create(ctx context.Context, values form.Values) (T, error) {
	d := form.NewDialog(s.codec, form.WithClock[T](s.now))
	d.Open()
	if err := setAll(d, values); err != nil {
		var zero T
		return zero, err
	}
	rec, err := d.Submit(ctx, s.repo.Create)
	if err != nil {
		return rec, err
	}
	s.log.Debug("record created", logger.String("resource", s.res.Plural), logger.Int64("id", rec.GetID()))
	s.invalidate(rec.GetID())
	return rec, nil
}

// Edit loads record id, applies values over it and submits the full record.
func (s *Screen[T]) Edit(ctx context.Context, id int64, values form.Values) (T, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return cur, err
	}
	d := form.NewDialog(s.codec, form.WithClock[T](s.now))
	d.OpenEdit(cur)
	if err := setAll(d, values); err != nil {
		var zero T
		return zero, err
	}
	rec, err := d.Submit(ctx, func(ctx context.Context, rec T) (T, error) {
		return s.repo.Update(ctx, id, rec)
	})
	if err != nil {
		return rec, err
	}
	s.log.Debug("record updated", logger.String("resource", s.res.Plural), logger.Int64("id", id))
	s.invalidate(id)
	return rec, nil
}

// Delete removes record id without confirmation.
func (s *Screen[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug("record deleted", logger.String("resource", s.res.Plural), logger.Int64("id", id))
	s.invalidate(id)
	return nil
}

func (s *Screen[T]) invalidate(id int64) {
	s.cache.Invalidate(s.res.CacheKey())
	s.cache.Invalidate(s.detailKey(id))
}

func (s *Screen[T]) Fields() []string      { return s.codec.Fields() }
func (s *Screen[T]) Template() form.Values { return s.codec.Empty() }

// Render writes the statistics and one card per record.
func (s *Screen[T]) Render(ctx context.Context, w io.Writer) error {
	return s.renderList(w, s.Load(ctx), nil)
}

// RenderFiltered renders only the cards kept by filter. Statistics still
// cover the whole collection.
func (s *Screen[T]) RenderFiltered(ctx context.Context, w io.Writer, filter func([]T) []T) error {
	return s.renderList(w, s.Load(ctx), filter)
}

func (s *Screen[T]) renderList(w io.Writer, st cache.State[[]T], filter func([]T) []T) error {
	switch {
	case st.IsError:
		_, err := fmt.Fprintf(w, "Failed to load %s: %v\n", s.res.Plural, st.Err)
		return err
	case !st.HasData:
		_, err := fmt.Fprintf(w, "Loading %s...\n", s.res.Plural)
		return err
	case len(st.Data) == 0:
		_, err := fmt.Fprintln(w, EmptyMessage(s.res))
		return err
	}

	items := append([]T(nil), st.Data...)
	if s.order != nil {
		s.order(items)
	}

	var b strings.Builder
	writeStats(&b, s.reduce(items))
	if filter != nil {
		items = filter(items)
	}
	for _, it := range items {
		b.WriteString("\n")
		writeCard(&b, it.Card())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Show writes the card and every form field of record id.
func (s *Screen[T]) Show(ctx context.Context, w io.Writer, id int64) error {
	st := s.Detail(ctx, id)
	if st.IsError {
		return st.Err
	}
	if !st.HasData {
		_, err := fmt.Fprintf(w, "Loading %s %d...\n", strings.ToLower(s.res.Name), id)
		return err
	}
	var b strings.Builder
	writeCard(&b, st.Data.Card())
	vals := s.codec.Encode(st.Data)
	for _, f := range s.codec.Fields() {
		if v := vals[f]; v != "" {
			fmt.Fprintf(&b, "   %s: %s\n", f, v)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// EmptyMessage is the placeholder of an empty collection.
func EmptyMessage(res domain.Resource) string {
	return "No " + res.Plural + " found."
}

func writeStats(b *strings.Builder, stats []Stat) {
	parts := make([]string, 0, len(stats))
	for _, st := range stats {
		parts = append(parts, st.Label+": "+st.Value)
	}
	b.WriteString(strings.Join(parts, " | "))
	b.WriteString("\n")
}

func writeCard(b *strings.Builder, c domain.Card) {
	fmt.Fprintf(b, "#%d %s", c.ID, c.Title)
	for _, badge := range c.Badges {
		fmt.Fprintf(b, " [%s]", badge)
	}
	b.WriteString("\n")
	if c.Subtitle != "" {
		fmt.Fprintf(b, "   %s\n", c.Subtitle)
	}
	for _, l := range c.Lines {
		fmt.Fprintf(b, "   %s\n", l)
	}
}

func setAll[T domain.Record[T]](d *form.Dialog[T], values form.Values) error {
	for _, k := range values.Keys() {
		if err := d.Set(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}
