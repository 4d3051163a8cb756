package repository

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/notify"
)

// notifying reports mutation outcomes the way the HTTP interceptor does, so
// the local variant shows the same messages as the API-backed one.
type notifying[T any] struct {
	Repository[T]
	res domain.Resource
	n   notify.Notifier
}

// WithNotifications decorates repo so every mutation and every failure
// produces exactly one notification. Reads stay silent unless they fail.
func WithNotifications[T any](repo Repository[T], res domain.Resource, n notify.Notifier) Repository[T] {
	return &notifying[T]{Repository: repo, res: res, n: n}
}

func (r *notifying[T]) List(ctx context.Context) ([]T, error) {
	items, err := r.Repository.List(ctx)
	r.fail(err)
	return items, err
}

func (r *notifying[T]) Get(ctx context.Context, id int64) (T, error) {
	item, err := r.Repository.Get(ctx, id)
	r.fail(err)
	return item, err
}

func (r *notifying[T]) Create(ctx context.Context, item T) (T, error) {
	out, err := r.Repository.Create(ctx, item)
	r.done(http.MethodPost, err)
	return out, err
}

func (r *notifying[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	out, err := r.Repository.Update(ctx, id, item)
	r.done(http.MethodPut, err)
	return out, err
}

func (r *notifying[T]) Delete(ctx context.Context, id int64) error {
	err := r.Repository.Delete(ctx, id)
	r.done(http.MethodDelete, err)
	return err
}

func (r *notifying[T]) done(method string, err error) {
	if err != nil {
		r.fail(err)
		return
	}
	r.n.Notify(notify.Notification{Severity: notify.SeveritySuccess, Message: notify.Mutation(notify.EntityFromURL(r.res.Route), method)})
}

func (r *notifying[T]) fail(err error) {
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		r.n.Notify(notify.Notification{Severity: notify.SeverityInfo, Message: notify.MsgNotFound})
	default:
		r.n.Notify(notify.Notification{Severity: notify.SeverityError, Message: "Error: " + err.Error()})
	}
}

// Notifying wraps every repository of the set with WithNotifications.
func (s Set) Notifying(n notify.Notifier) Set {
	return Set{
		Projects:    WithNotifications(s.Projects, domain.Projects, n),
		Blogs:       WithNotifications(s.Blogs, domain.Blogs, n),
		Products:    WithNotifications(s.Products, domain.Products, n),
		Events:      WithNotifications(s.Events, domain.Events, n),
		Contacts:    WithNotifications(s.Contacts, domain.Contacts, n),
		Quotes:      WithNotifications(s.Quotes, domain.Quotes, n),
		Subscribers: WithNotifications(s.Subscribers, domain.Subscribers, n),
		Offers:      WithNotifications(s.Offers, domain.Offers, n),
		Ads:         WithNotifications(s.Ads, domain.Ads, n),
		FAQs:        WithNotifications(s.FAQs, domain.FAQs, n),
		Reviews:     WithNotifications(s.Reviews, domain.Reviews, n),
		TeamMembers: WithNotifications(s.TeamMembers, domain.TeamMembers, n),
	}
}
