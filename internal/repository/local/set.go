package local

import (
	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/kv"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

// NewSet builds a repository per collection over one store, each under the
// resource's storage key.
func NewSet(store kv.Store, opts ...Option) repository.Set {
	return repository.Set{
		Projects:    New[domain.Project](store, domain.Projects.StorageKey, opts...),
		Blogs:       New[domain.Blog](store, domain.Blogs.StorageKey, opts...),
		Products:    New[domain.Product](store, domain.Products.StorageKey, opts...),
		Events:      New[domain.Event](store, domain.Events.StorageKey, opts...),
		Contacts:    New[domain.Contact](store, domain.Contacts.StorageKey, opts...),
		Quotes:      New[domain.Quote](store, domain.Quotes.StorageKey, opts...),
		Subscribers: New[domain.Subscriber](store, domain.Subscribers.StorageKey, opts...),
		Offers:      New[domain.Offer](store, domain.Offers.StorageKey, opts...),
		Ads:         New[domain.Ad](store, domain.Ads.StorageKey, opts...),
		FAQs:        New[domain.FAQ](store, domain.FAQs.StorageKey, opts...),
		Reviews:     New[domain.Review](store, domain.Reviews.StorageKey, opts...),
		TeamMembers: New[domain.TeamMember](store, domain.TeamMembers.StorageKey, opts...),
	}
}
