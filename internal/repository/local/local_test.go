package local

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/kv/memory"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestListEmptyCollection(t *testing.T) {
	repo := New[domain.Project](memory.New(), "projects")
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("List() on empty store = %#v, want empty non-nil slice", items)
	}
}

func TestCreateAssignsUniqueTimestampIDs(t *testing.T) {
	ctx := context.Background()
	repo := New[domain.Ad](memory.New(), "custom_ads", WithClock(fixedClock(1_700_000_000_000)))

	a, err := repo.Create(ctx, domain.Ad{Title: "first"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := repo.Create(ctx, domain.Ad{Title: "second"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if a.ID != 1_700_000_000_000 {
		t.Errorf("first id = %d, want clock millis", a.ID)
	}
	if b.ID <= a.ID {
		t.Errorf("ids not increasing under a frozen clock: %d then %d", a.ID, b.ID)
	}

	items, _ := repo.List(ctx)
	if len(items) != 2 {
		t.Fatalf("List() = %d items, want 2", len(items))
	}
}

func TestCreateIgnoresCallerID(t *testing.T) {
	repo := New[domain.FAQ](memory.New(), "faqs", WithClock(fixedClock(5000)))
	got, err := repo.Create(context.Background(), domain.FAQ{ID: 1, Question: "q", Answer: "a"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != 5000 {
		t.Errorf("Create() id = %d, want store-assigned 5000", got.ID)
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	repo := New[domain.Product](memory.New(), "products")

	created, _ := repo.Create(ctx, domain.Product{Name: "Lamp", Description: "desk lamp", Price: 20, Stock: 3})

	updated, err := repo.Update(ctx, created.ID, domain.Product{Name: "Lamp v2", Price: 25})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Update() changed id: %d -> %d", created.ID, updated.ID)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Lamp v2" || got.Price != 25 {
		t.Errorf("Get() after update = %+v", got)
	}
	if got.Description != "" || got.Stock != 0 {
		t.Errorf("omitted fields should be wiped, got %+v", got)
	}
}

func TestMissingIDs(t *testing.T) {
	ctx := context.Background()
	repo := New[domain.Blog](memory.New(), "blogs")
	kept, _ := repo.Create(ctx, domain.Blog{Title: "keep"})

	if _, err := repo.Get(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Get(42) error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Update(ctx, 42, domain.Blog{Title: "x"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Update(42) error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete(42) error = %v, want ErrNotFound", err)
	}

	items, _ := repo.List(ctx)
	if len(items) != 1 || items[0].ID != kept.ID {
		t.Errorf("collection changed after failed mutations: %+v", items)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := New[domain.Contact](memory.New(), "contacts")
	a, _ := repo.Create(ctx, domain.Contact{Name: "A", Email: "a@example.com"})
	b, _ := repo.Create(ctx, domain.Contact{Name: "B", Email: "b@example.com"})

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	items, _ := repo.List(ctx)
	if len(items) != 1 || items[0].ID != b.ID {
		t.Errorf("List() after delete = %+v", items)
	}
}

func TestCorruptCollection(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	_ = store.Set(ctx, "events", []byte("{not json"))

	if _, err := New[domain.Event](store, "events").List(ctx); err == nil {
		t.Error("List() on corrupt JSON should fail")
	}
}

func TestSharedStorageKey(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	writer := New[domain.TeamMember](store, "team_members")
	reader := New[domain.TeamMember](store, "team_members")

	_, _ = writer.Create(ctx, domain.TeamMember{Name: "Ada", Role: "CTO"})
	items, _ := reader.List(ctx)
	if len(items) != 1 {
		t.Errorf("second repository over the same key sees %d items, want 1", len(items))
	}
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := New[domain.Subscriber](memory.New(), "newsletter_subscribers", WithClock(fixedClock(1)))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Create(ctx, domain.Subscriber{Email: "x@example.com"}); err != nil {
				t.Errorf("Create() error = %v", err)
			}
		}()
	}
	wg.Wait()

	items, _ := repo.List(ctx)
	if len(items) != 20 {
		t.Fatalf("List() = %d items, want 20", len(items))
	}
	seen := map[int64]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %d", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := New[domain.FAQ](memory.New(), "faqs", WithClock(fixedClock(100)))

	n, err := repo.SeedIfEmpty(ctx, []domain.FAQ{{ID: 7, Question: "a"}, {Question: "b"}})
	if err != nil || n != 2 {
		t.Fatalf("SeedIfEmpty() = %d, %v", n, err)
	}
	items, _ := repo.List(ctx)
	if items[0].ID != 7 || items[1].ID == 0 || items[1].ID == 7 {
		t.Errorf("seeded ids = %d, %d", items[0].ID, items[1].ID)
	}

	n, err = repo.SeedIfEmpty(ctx, []domain.FAQ{{Question: "c"}})
	if err != nil || n != 0 {
		t.Errorf("second SeedIfEmpty() = %d, %v; want 0, nil", n, err)
	}
}

func TestNewSetUsesStorageKeys(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	set := NewSet(store)

	if _, err := set.Ads.Create(ctx, domain.Ad{Title: "banner"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Get(ctx, "custom_ads"); err != nil {
		t.Errorf("ads should persist under custom_ads: %v", err)
	}
	if _, err := set.Subscribers.Create(ctx, domain.Subscriber{Email: "s@example.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Get(ctx, "newsletter_subscribers"); err != nil {
		t.Errorf("subscribers should persist under newsletter_subscribers: %v", err)
	}
}
