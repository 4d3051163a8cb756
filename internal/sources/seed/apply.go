package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/kv"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/repository/local"
)

// collection decodes raw records and seeds one local repository.
type collection func(ctx context.Context, raw []map[string]any) (int, error)

func seeder[T domain.Record[T]](store kv.Store, res domain.Resource) collection {
	repo := local.New[T](store, res.StorageKey)
	return func(ctx context.Context, raw []map[string]any) (int, error) {
		items, err := decode[T](raw)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", res.Plural, err)
		}
		return repo.SeedIfEmpty(ctx, items)
	}
}

// decode goes through JSON so records keep their camelCase wire names.
func decode[T any](raw []map[string]any) ([]T, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return items, nil
}

func collections(store kv.Store) map[string]collection {
	return map[string]collection{
		domain.Projects.StorageKey:    seeder[domain.Project](store, domain.Projects),
		domain.Blogs.StorageKey:       seeder[domain.Blog](store, domain.Blogs),
		domain.Products.StorageKey:    seeder[domain.Product](store, domain.Products),
		domain.Events.StorageKey:      seeder[domain.Event](store, domain.Events),
		domain.Contacts.StorageKey:    seeder[domain.Contact](store, domain.Contacts),
		domain.Quotes.StorageKey:      seeder[domain.Quote](store, domain.Quotes),
		domain.Subscribers.StorageKey: seeder[domain.Subscriber](store, domain.Subscribers),
		domain.Offers.StorageKey:      seeder[domain.Offer](store, domain.Offers),
		domain.Ads.StorageKey:         seeder[domain.Ad](store, domain.Ads),
		domain.FAQs.StorageKey:        seeder[domain.FAQ](store, domain.FAQs),
		domain.Reviews.StorageKey:     seeder[domain.Review](store, domain.Reviews),
		domain.TeamMembers.StorageKey: seeder[domain.TeamMember](store, domain.TeamMembers),
	}
}

// Apply seeds every collection of f that is still empty and returns the
// number of records written per storage key.
func Apply(ctx context.Context, store kv.Store, f File, log logger.Logger) (map[string]int, error) {
	if log == nil {
		log = logger.Nop()
	}
	targets := collections(store)

	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	written := map[string]int{}
	for _, name := range names {
		res, ok := domain.Lookup(name)
		if !ok {
			return written, fmt.Errorf("seed: unknown collection %q", name)
		}
		n, err := targets[res.StorageKey](ctx, f[name])
		if err != nil {
			return written, fmt.Errorf("seed: %w", err)
		}
		written[res.StorageKey] += n
		if n > 0 {
			log.Info("collection seeded", logger.String("collection", res.StorageKey), logger.Int("records", n))
		}
	}
	return written, nil
}
