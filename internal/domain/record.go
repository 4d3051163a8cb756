// Package domain holds the back-office records, their vocabularies and the
// pure values derived from them (CTR, discount, expiry).
package domain

import "time"

// DateLayout is the calendar-date layout used for creation stamps.
const DateLayout = "2006-01-02"

// Record is implemented by every entity kept in a collection.
// WithID returns a copy, records are passed by value.
type Record[T any] interface {
	GetID() int64
	WithID(id int64) T
}

// Stamped is implemented by records that own a creation date.
type Stamped[T any] interface {
	GetCreatedAt() string
	WithCreatedAt(date string) T
}

// Today formats now as a creation stamp.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
