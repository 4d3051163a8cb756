package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/httpserver/deps"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

type componentStatus struct {
	OK      bool   `json:"ok"`
	Backend string `json:"backend,omitempty"`
	Records *int   `json:"records,omitempty"`
	Error   string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the store status and the record count of every collection.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		components := map[string]componentStatus{"store": checkStore(ctx, d)}
		for name, count := range collectionCounters(d.Repos) {
			n, err := count(ctx)
			if err != nil {
				components[name] = componentStatus{OK: false, Error: err.Error()}
				continue
			}
			components[name] = componentStatus{OK: true, Records: &n}
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	if store, ok := components["store"]; ok && !store.OK {
		return "critical"
	}
	for _, c := range components {
		if !c.OK {
			return "degraded"
		}
	}
	return "operational"
}

func checkStore(ctx context.Context, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{OK: false, Backend: d.StoreBackend, Error: "store not initialized"}
	}
	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{OK: false, Backend: d.StoreBackend, Error: err.Error()}
	}
	return componentStatus{OK: true, Backend: d.StoreBackend}
}

type counter func(ctx context.Context) (int, error)

func countOf[T any](repo repository.Repository[T]) counter {
	return func(ctx context.Context) (int, error) {
		items, err := repo.List(ctx)
		return len(items), err
	}
}

func collectionCounters(s repository.Set) map[string]counter {
	return map[string]counter{
		domain.Projects.Plural:    countOf(s.Projects),
		domain.Blogs.Plural:       countOf(s.Blogs),
		domain.Products.Plural:    countOf(s.Products),
		domain.Events.Plural:      countOf(s.Events),
		domain.Contacts.Plural:    countOf(s.Contacts),
		domain.Quotes.Plural:      countOf(s.Quotes),
		domain.Subscribers.Plural: countOf(s.Subscribers),
		domain.Offers.Plural:      countOf(s.Offers),
		domain.Ads.Plural:         countOf(s.Ads),
		domain.FAQs.Plural:        countOf(s.FAQs),
		domain.Reviews.Plural:     countOf(s.Reviews),
		domain.TeamMembers.Plural: countOf(s.TeamMembers),
	}
}
