package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/deps"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/mw"
)

func init() { Register(registerCollections) }

func registerCollections(r chi.Router, d deps.Deps) {
	s := d.Repos
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth(d.Auth, d.Logger))

		handlers.NewCollection(domain.Projects, s.Projects, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Blogs, s.Blogs, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Products, s.Products, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Events, s.Events, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Contacts, s.Contacts, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Quotes, s.Quotes, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Subscribers, s.Subscribers, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Offers, s.Offers, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Ads, s.Ads, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.FAQs, s.FAQs, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.Reviews, s.Reviews, d.TimeNow, d.Logger).Mount(r)
		handlers.NewCollection(domain.TeamMembers, s.TeamMembers, d.TimeNow, d.Logger).Mount(r)
	})
}
