package repository

import "github.com/MrSnakeDoc/backoffice/internal/domain"

// Set bundles one repository per dashboard collection. local.NewSet and
// remote.NewSet build the two variants.
type Set struct {
	Projects    Repository[domain.Project]
	Blogs       Repository[domain.Blog]
	Products    Repository[domain.Product]
	Events      Repository[domain.Event]
	Contacts    Repository[domain.Contact]
	Quotes      Repository[domain.Quote]
	Subscribers Repository[domain.Subscriber]
	Offers      Repository[domain.Offer]
	Ads         Repository[domain.Ad]
	FAQs        Repository[domain.FAQ]
	Reviews     Repository[domain.Review]
	TeamMembers Repository[domain.TeamMember]
}
