package dashboard

import (
	"testing"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func statMap(stats []Stat) map[string]string {
	m := make(map[string]string, len(stats))
	for _, s := range stats {
		m[s.Label] = s.Value
	}
	return m
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole int
		want        string
	}{
		{0, 0, "0.00%"},
		{1, 3, "33.33%"},
		{5, 5, "100.00%"},
		{3, -1, "0.00%"},
	}
	for _, tt := range tests {
		if got := Percent(tt.part, tt.whole); got != tt.want {
			t.Errorf("Percent(%d, %d) = %q, want %q", tt.part, tt.whole, got, tt.want)
		}
	}
}

func TestAdStats(t *testing.T) {
	ads := []domain.Ad{
		{Status: domain.StatusActive, EndDate: "2024-12-31", Clicks: 10, Impressions: 200},
		{Status: domain.StatusActive, EndDate: "2024-01-01", Clicks: 5, Impressions: 100},
		{Status: domain.StatusInactive, Clicks: 0, Impressions: 0},
	}
	got := statMap(AdStats(ads, now))
	want := map[string]string{"Total ads": "3", "Active ads": "1", "Total clicks": "15", "Average CTR": "5.00%"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
	if statMap(AdStats(nil, now))["Average CTR"] != "0.00%" {
		t.Error("empty ad list should report 0.00% CTR")
	}
}

func TestReviewStats(t *testing.T) {
	if got := statMap(ReviewStats(nil, now))["Average rating"]; got != "0" {
		t.Errorf("empty average = %q, want 0", got)
	}
	reviews := []domain.Review{
		{Rating: 5, Featured: true, Status: "published"},
		{Rating: 4, Status: domain.StatusPending},
	}
	got := statMap(ReviewStats(reviews, now))
	if got["Average rating"] != "4.5" || got["Published"] != "1" || got["Featured"] != "1" {
		t.Errorf("ReviewStats() = %v", got)
	}
}

func TestOfferStats(t *testing.T) {
	offers := []domain.Offer{
		{Status: domain.StatusActive, ValidUntil: "2025-01-01", DiscountPercentage: 20},
		{Status: domain.StatusActive, ValidUntil: "2024-01-01", DiscountPercentage: 10},
		{Status: domain.StatusArchived, DiscountPercentage: 30},
	}
	got := statMap(OfferStats(offers, now))
	want := map[string]string{"Total offers": "3", "Active offers": "1", "Expired offers": "2", "Average discount": "20%"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestContactAndSubscriberStats(t *testing.T) {
	contacts := []domain.Contact{
		{Status: domain.StatusUnread, Priority: "high"},
		{Status: domain.StatusRead, Replied: true, Priority: domain.PriorityLow},
	}
	c := statMap(ContactStats(contacts, now))
	if c["Unread"] != "1" || c["Replied"] != "1" || c["High priority"] != "1" {
		t.Errorf("ContactStats() = %v", c)
	}

	subs := []domain.Subscriber{
		{Status: "active", SubscribedAt: "2024-06-02"},
		{Status: "unsubscribed", SubscribedAt: "2024-05-30"},
		{Status: domain.StatusActive, SubscribedAt: "2023-06-10"},
	}
	s := statMap(SubscriberStats(subs, now))
	if s["Active"] != "2" || s["Unsubscribed"] != "1" || s["This month"] != "1" {
		t.Errorf("SubscriberStats() = %v", s)
	}
}

func TestProductAndStatusStats(t *testing.T) {
	products := []domain.Product{{Price: 2.5, Stock: 4}, {Price: 10, Stock: 0}}
	p := statMap(ProductStats(products, now))
	if p["In stock"] != "1" || p["Out of stock"] != "1" || p["Inventory value"] != "10.00" {
		t.Errorf("ProductStats() = %v", p)
	}

	projects := []domain.Project{{Status: "in-progress"}, {Status: domain.StatusCompleted}, {Status: "In Progress"}, {}}
	fn := StatusStats("Total projects", func(p domain.Project) domain.Status { return p.Status })
	s := statMap(fn(projects, now))
	if s["Total projects"] != "4" || s["IN_PROGRESS"] != "2" || s["COMPLETED"] != "1" || s["none"] != "1" {
		t.Errorf("StatusStats() = %v", s)
	}
}

func TestFilterSubscribers(t *testing.T) {
	subs := []domain.Subscriber{
		{Email: "ada@example.com", Name: "Ada"},
		{Email: "bob@corp.io", Name: "Bob"},
	}
	if got := FilterSubscribers(subs, "  "); len(got) != 2 {
		t.Errorf("blank term kept %d", len(got))
	}
	if got := FilterSubscribers(subs, "CORP"); len(got) != 1 || got[0].Name != "Bob" {
		t.Errorf("FilterSubscribers(CORP) = %v", got)
	}
	if got := FilterSubscribers(subs, "ada"); len(got) != 1 {
		t.Errorf("FilterSubscribers(ada) = %v", got)
	}
}
