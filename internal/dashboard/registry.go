package dashboard

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/cache"
	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/form"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

// Controller is the type-erased view of a Screen used by the CLI.
type Controller interface {
	Resource() domain.Resource
	Render(ctx context.Context, w io.Writer) error
	Show(ctx context.Context, w io.Writer, id int64) error
	Stats(ctx context.Context) ([]Stat, error)
	Fields() []string
	Template() form.Values
	CreateValues(ctx context.Context, values form.Values) (int64, error)
	EditValues(ctx context.Context, id int64, values form.Values) error
	Delete(ctx context.Context, id int64) error
}

type controller[T Item[T]] struct {
	*Screen[T]
}

func (c controller[T]) CreateValues(ctx context.Context, values form.Values) (int64, error) {
	rec, err := c.Create(ctx, values)
	if err != nil {
		return 0, err
	}
	return rec.GetID(), nil
}

func (c controller[T]) EditValues(ctx context.Context, id int64, values form.Values) error {
	_, err := c.Edit(ctx, id, values)
	return err
}

// Registry holds one screen per collection.
type Registry struct {
	screens  map[string]Controller
	Contacts *Screen[domain.Contact]
	Subs     *Screen[domain.Subscriber]
}

// NewRegistry builds every screen over set, sharing one cache.
func NewRegistry(set repository.Set, c *cache.Cache, now func() time.Time, log logger.Logger) *Registry {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	r := &Registry{screens: map[string]Controller{}}

	add := func(ctl Controller) { r.screens[ctl.Resource().Plural] = ctl }

	add(controller[domain.Project]{screen(domain.Projects, set.Projects, c, form.Project(), now, log,
		WithStats(StatusStats("Total projects", func(p domain.Project) domain.Status { return p.Status })))})
	add(controller[domain.Blog]{screen(domain.Blogs, set.Blogs, c, form.Blog(), now, log,
		WithStats(StatusStats("Total blogs", func(b domain.Blog) domain.Status { return b.Status })))})
	add(controller[domain.Product]{screen(domain.Products, set.Products, c, form.Product(), now, log,
		WithStats(ProductStats))})
	add(controller[domain.Event]{screen(domain.Events, set.Events, c, form.Event(), now, log,
		WithStats(EventStats))})

	r.Contacts = screen(domain.Contacts, set.Contacts, c, form.Contact(), now, log, WithStats(ContactStats))
	add(controller[domain.Contact]{r.Contacts})

	add(controller[domain.Quote]{screen(domain.Quotes, set.Quotes, c, form.Quote(), now, log,
		WithStats(StatusStats("Total quotes", func(q domain.Quote) domain.Status { return q.Status })))})

	r.Subs = screen(domain.Subscribers, set.Subscribers, c, form.Subscriber(), now, log, WithStats(SubscriberStats))
	add(controller[domain.Subscriber]{r.Subs})

	add(controller[domain.Offer]{screen(domain.Offers, set.Offers, c, form.Offer(), now, log,
		WithStats(OfferStats))})
	add(controller[domain.Ad]{screen(domain.Ads, set.Ads, c, form.Ad(), now, log,
		WithStats(AdStats))})
	add(controller[domain.FAQ]{screen(domain.FAQs, set.FAQs, c, form.FAQ(), now, log,
		WithStats(FAQStats), WithOrder(func(faqs []domain.FAQ) {
			sort.SliceStable(faqs, func(i, j int) bool { return faqs[i].Order < faqs[j].Order })
		}))})
	add(controller[domain.Review]{screen(domain.Reviews, set.Reviews, c, form.Review(), now, log,
		WithStats(ReviewStats))})
	add(controller[domain.TeamMember]{screen(domain.TeamMembers, set.TeamMembers, c, form.TeamMember(), now, log,
		WithStats(StatusStats("Total members", func(m domain.TeamMember) domain.Status { return m.Status })))})

	return r
}

func screen[T Item[T]](res domain.Resource, repo repository.Repository[T], c *cache.Cache, codec form.Codec[T],
	now func() time.Time, log logger.Logger, opts ...ScreenOption[T]) *Screen[T] {
	opts = append(opts, WithScreenClock[T](now), WithScreenLogger[T](log.With(logger.String("resource", res.Plural))))
	return NewScreen(res, repo, c, codec, opts...)
}

// Get resolves a controller by any name domain.Lookup accepts.
func (r *Registry) Get(name string) (Controller, error) {
	res, ok := domain.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown resource %q", name)
	}
	return r.screens[res.Plural], nil
}

// All returns the controllers in sidebar order.
func (r *Registry) All() []Controller {
	out := make([]Controller, 0, len(r.screens))
	for _, res := range domain.Resources() {
		if ctl, ok := r.screens[res.Plural]; ok {
			out = append(out, ctl)
		}
	}
	return out
}
