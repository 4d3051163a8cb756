package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MrSnakeDoc/backoffice/internal/apiclient"
	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

func newClient(t *testing.T, h http.Handler) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := apiclient.New(apiclient.Options{BaseURL: srv.URL + "/api"})
	if err != nil {
		t.Fatalf("apiclient.New() error = %v", err)
	}
	return c
}

func TestRoutesAndMethods(t *testing.T) {
	type call struct{ method, path string }
	var calls []call

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/faqs":
			_, _ = w.Write([]byte(`null`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			var f domain.FAQ
			_ = json.NewDecoder(r.Body).Decode(&f)
			f.ID = 9
			_ = json.NewEncoder(w).Encode(f)
		}
	})
	repo := New[domain.FAQ](newClient(t, h), domain.FAQs.Route)
	ctx := context.Background()

	items, err := repo.List(ctx)
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("List() = %#v, %v; want empty non-nil", items, err)
	}
	created, err := repo.Create(ctx, domain.FAQ{Question: "q", Answer: "a"})
	if err != nil || created.ID != 9 {
		t.Fatalf("Create() = %+v, %v", created, err)
	}
	if _, err := repo.Update(ctx, 9, created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if _, err := repo.Get(ctx, 9); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if err := repo.Delete(ctx, 9); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	want := []call{
		{"GET", "/api/faqs"},
		{"POST", "/api/faqs"},
		{"PUT", "/api/faqs/9"},
		{"GET", "/api/faqs/9"},
		{"DELETE", "/api/faqs/9"},
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %+v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, calls[i], want[i])
		}
	}
}

func TestNotFoundMapsToRepositoryError(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Offer not found"}`))
	})
	repo := New[domain.Offer](newClient(t, h), domain.Offers.Route)

	err := repo.Delete(context.Background(), 1)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete() error = %v, want repository.ErrNotFound", err)
	}
	var se *apiclient.StatusError
	if !errors.As(err, &se) || se.Message != "Offer not found" {
		t.Errorf("underlying status error lost: %v", err)
	}
}

func TestServerErrorPassesThrough(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	repo := New[domain.Ad](newClient(t, h), domain.Ads.Route)

	_, err := repo.List(context.Background())
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		t.Errorf("List() error = %v, want non-404 failure", err)
	}
}
