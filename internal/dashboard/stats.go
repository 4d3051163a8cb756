package dashboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
)

// Stat is one summary figure shown above a list.
type Stat struct {
	Label string
	Value string
}

func count(label string, n int) Stat { return Stat{Label: label, Value: strconv.Itoa(n)} }

// Percent formats part/whole with two decimals, "0.00%" when whole is 0.
func Percent(part, whole int) string {
	if whole <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(whole)*100)
}

func AdStats(ads []domain.Ad, now time.Time) []Stat {
	var active, clicks, impressions int
	for _, a := range ads {
		if a.Live(now) {
			active++
		}
		clicks += a.Clicks
		impressions += a.Impressions
	}
	return []Stat{
		count("Total ads", len(ads)),
		count("Active ads", active),
		count("Total clicks", clicks),
		{Label: "Average CTR", Value: domain.CTR(clicks, impressions)},
	}
}

func ReviewStats(reviews []domain.Review, _ time.Time) []Stat {
	var published, featured, sum int
	for _, r := range reviews {
		if r.Status.Is(domain.StatusPublished) {
			published++
		}
		if r.Featured {
			featured++
		}
		sum += r.Rating
	}
	avg := "0"
	if len(reviews) > 0 {
		avg = strconv.FormatFloat(float64(sum)/float64(len(reviews)), 'f', 1, 64)
	}
	return []Stat{
		count("Total reviews", len(reviews)),
		count("Published", published),
		count("Featured", featured),
		{Label: "Average rating", Value: avg},
	}
}

func OfferStats(offers []domain.Offer, now time.Time) []Stat {
	var active, lapsed, discount int
	for _, o := range offers {
		if o.Live(now) {
			active++
		}
		if o.Lapsed(now) {
			lapsed++
		}
		discount += o.DiscountPercentage
	}
	avg := 0
	if len(offers) > 0 {
		avg = discount / len(offers)
	}
	return []Stat{
		count("Total offers", len(offers)),
		count("Active offers", active),
		count("Expired offers", lapsed),
		{Label: "Average discount", Value: strconv.Itoa(avg) + "%"},
	}
}

func ContactStats(contacts []domain.Contact, _ time.Time) []Stat {
	var unread, replied, high int
	for _, c := range contacts {
		if c.Status.Is(domain.StatusUnread) {
			unread++
		}
		if c.Replied {
			replied++
		}
		if c.Priority.Is(domain.PriorityHigh) || c.Priority.Is(domain.PriorityUrgent) {
			high++
		}
	}
	return []Stat{
		count("Total messages", len(contacts)),
		count("Unread", unread),
		count("Replied", replied),
		count("High priority", high),
	}
}

func SubscriberStats(subs []domain.Subscriber, now time.Time) []Stat {
	var active, unsubscribed, thisMonth int
	y, m, _ := now.Date()
	for _, s := range subs {
		switch {
		case s.Status.Is(domain.StatusActive):
			active++
		case s.Status.Is(domain.StatusUnsubscribed):
			unsubscribed++
		}
		if t, err := domain.ParseDate(s.SubscribedAt); err == nil {
			if ty, tm, _ := t.Date(); ty == y && tm == m {
				thisMonth++
			}
		}
	}
	return []Stat{
		count("Total subscribers", len(subs)),
		count("Active", active),
		count("Unsubscribed", unsubscribed),
		count("This month", thisMonth),
	}
}

func FAQStats(faqs []domain.FAQ, _ time.Time) []Stat {
	var published int
	categories := map[string]struct{}{}
	for _, f := range faqs {
		if f.Status.Is(domain.StatusPublished) {
			published++
		}
		if c := strings.TrimSpace(f.Category); c != "" {
			categories[strings.ToLower(c)] = struct{}{}
		}
	}
	return []Stat{
		count("Total FAQs", len(faqs)),
		count("Published", published),
		count("Categories", len(categories)),
	}
}

func ProductStats(products []domain.Product, _ time.Time) []Stat {
	var inStock int
	var value float64
	for _, p := range products {
		if p.InStock() {
			inStock++
		}
		value += p.Price * float64(p.Stock)
	}
	return []Stat{
		count("Total products", len(products)),
		count("In stock", inStock),
		count("Out of stock", len(products)-inStock),
		{Label: "Inventory value", Value: fmt.Sprintf("%.2f", value)},
	}
}

func EventStats(events []domain.Event, now time.Time) []Stat {
	var past int
	for _, e := range events {
		if domain.Expired(e.Date, now) {
			past++
		}
	}
	return []Stat{
		count("Total events", len(events)),
		count("Upcoming", len(events)-past),
		count("Past", past),
	}
}

// StatusStats counts records per status, statuses sorted by name.
func StatusStats[T any](label string, status func(T) domain.Status) func([]T, time.Time) []Stat {
	return func(items []T, _ time.Time) []Stat {
		per := map[string]int{}
		for _, it := range items {
			s := strings.TrimSpace(string(status(it)))
			if s == "" {
				s = "none"
			}
			if parsed, err := domain.ParseStatus(s); err == nil {
				s = string(parsed)
			}
			per[s]++
		}
		keys := make([]string, 0, len(per))
		for k := range per {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := []Stat{count(label, len(items))}
		for _, k := range keys {
			out = append(out, count(k, per[k]))
		}
		return out
	}
}

// FilterSubscribers keeps the subscribers whose name or email contains
// term, case-insensitively. A blank term keeps everyone.
func FilterSubscribers(subs []domain.Subscriber, term string) []domain.Subscriber {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return subs
	}
	out := make([]domain.Subscriber, 0, len(subs))
	for _, s := range subs {
		if strings.Contains(strings.ToLower(s.Email), term) || strings.Contains(strings.ToLower(s.Name), term) {
			out = append(out, s)
		}
	}
	return out
}
