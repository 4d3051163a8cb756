package remote

import (
	"github.com/MrSnakeDoc/backoffice/internal/apiclient"
	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/repository"
)

// NewSet builds a repository per collection over one API client, each on
// the resource's route.
func NewSet(client *apiclient.Client) repository.Set {
	return repository.Set{
		Projects:    New[domain.Project](client, domain.Projects.Route),
		Blogs:       New[domain.Blog](client, domain.Blogs.Route),
		Products:    New[domain.Product](client, domain.Products.Route),
		Events:      New[domain.Event](client, domain.Events.Route),
		Contacts:    New[domain.Contact](client, domain.Contacts.Route),
		Quotes:      New[domain.Quote](client, domain.Quotes.Route),
		Subscribers: New[domain.Subscriber](client, domain.Subscribers.Route),
		Offers:      New[domain.Offer](client, domain.Offers.Route),
		Ads:         New[domain.Ad](client, domain.Ads.Route),
		FAQs:        New[domain.FAQ](client, domain.FAQs.Route),
		Reviews:     New[domain.Review](client, domain.Reviews.Route),
		TeamMembers: New[domain.TeamMember](client, domain.TeamMembers.Route),
	}
}
