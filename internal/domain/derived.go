package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DiscountPercentage is the rounded percentage saved between the original and
// discounted price. A non-positive original price yields 0.
func DiscountPercentage(original, discounted float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((original - discounted) / original * 100))
}

// CTR formats the click-through rate with two decimals, "0.00%" when there
// were no impressions.
func CTR(clicks, impressions int) string {
	if impressions <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(clicks)/float64(impressions)*100)
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// Expired reports whether date is set and strictly before now. Unparseable
// dates never expire.
func Expired(date string, now time.Time) bool {
	if strings.TrimSpace(date) == "" {
		return false
	}
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	return t.Before(now)
}

// Live reports whether the ad is ACTIVE and its end date has not passed.
func (r Ad) Live(now time.Time) bool {
	return r.Status.Is(StatusActive) && !Expired(r.EndDate, now)
}

// CTR is the ad's own click-through rate.
func (r Ad) CTR() string { return CTR(r.Clicks, r.Impressions) }

// Live reports whether the offer is ACTIVE and still valid.
func (r Offer) Live(now time.Time) bool {
	return r.Status.Is(StatusActive) && !Expired(r.ValidUntil, now)
}

// Lapsed reports whether the offer was archived or its validity has passed.
func (r Offer) Lapsed(now time.Time) bool {
	return r.Status.Is(StatusArchived) || Expired(r.ValidUntil, now)
}

// InStock reports whether the product has units left.
func (r Product) InStock() bool { return r.Stock > 0 }
