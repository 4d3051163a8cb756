package domain

import (
	"sort"
	"strings"
)

// Resource describes one entity collection: its display names, its REST
// route below the API prefix and the storage key its array lives under.
type Resource struct {
	Name       string // singular display name, ex: "Ad"
	Plural     string // lower-case plural used in copy and cache keys, ex: "ads"
	Route      string // ex: "/ads"
	StorageKey string // ex: "custom_ads"
}

// CacheKey is the query key of the whole collection.
func (r Resource) CacheKey() string { return r.Plural }

var (
	Projects    = Resource{Name: "Project", Plural: "projects", Route: "/projects", StorageKey: "projects"}
	Blogs       = Resource{Name: "Blog", Plural: "blogs", Route: "/blogs", StorageKey: "blogs"}
	Products    = Resource{Name: "Product", Plural: "products", Route: "/products", StorageKey: "products"}
	Events      = Resource{Name: "Event", Plural: "events", Route: "/events", StorageKey: "events"}
	Contacts    = Resource{Name: "Contact", Plural: "contacts", Route: "/contacts", StorageKey: "contacts"}
	Quotes      = Resource{Name: "Quote", Plural: "quotes", Route: "/quotes", StorageKey: "quotes"}
	Subscribers = Resource{Name: "Subscriber", Plural: "subscribers", Route: "/newsletter", StorageKey: "newsletter_subscribers"}
	Offers      = Resource{Name: "Offer", Plural: "offers", Route: "/offers", StorageKey: "offers"}
	Ads         = Resource{Name: "Ad", Plural: "ads", Route: "/ads", StorageKey: "custom_ads"}
	FAQs        = Resource{Name: "FAQ", Plural: "faqs", Route: "/faqs", StorageKey: "faqs"}
	Reviews     = Resource{Name: "Review", Plural: "reviews", Route: "/reviews", StorageKey: "reviews"}
	TeamMembers = Resource{Name: "Team member", Plural: "team", Route: "/team-members", StorageKey: "team_members"}

	// Users backs authentication and has no dashboard screen.
	Users = Resource{Name: "User", Plural: "users", Route: "/users", StorageKey: "users"}
)

// Resources returns every dashboard collection, in sidebar order.
func Resources() []Resource {
	return []Resource{
		Projects, Blogs, Products, Events, Contacts, Quotes,
		Subscribers, Offers, Ads, FAQs, Reviews, TeamMembers,
	}
}

// Lookup resolves a resource by plural, singular, route or storage key,
// case-insensitively ("ads", "ad", "/ads", "custom_ads").
func Lookup(name string) (Resource, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Resource{}, false
	}
	for _, r := range Resources() {
		switch n {
		case r.Plural, strings.ToLower(r.Name), r.Route, strings.TrimPrefix(r.Route, "/"), r.StorageKey:
			return r, true
		}
	}
	switch n {
	case "newsletter", "subscriber":
		return Subscribers, true
	case "team-member", "team_member", "member", "members":
		return TeamMembers, true
	}
	return Resource{}, false
}

// ResourceNames lists the plural names, sorted.
func ResourceNames() []string {
	res := Resources()
	names := make([]string, 0, len(res))
	for _, r := range res {
		names = append(names, r.Plural)
	}
	sort.Strings(names)
	return names
}
