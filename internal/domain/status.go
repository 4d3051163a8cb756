package domain

import (
	"fmt"
	"strings"
)

// Status is the lifecycle label carried by most records. Stored data mixes
// cases ("active", "ACTIVE"), so comparisons go through Is.
type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusInactive     Status = "INACTIVE"
	StatusDraft        Status = "DRAFT"
	StatusPublished    Status = "PUBLISHED"
	StatusArchived     Status = "ARCHIVED"
	StatusPending      Status = "PENDING"
	StatusResolved     Status = "RESOLVED"
	StatusRejected     Status = "REJECTED"
	StatusUnread       Status = "UNREAD"
	StatusRead         Status = "READ"
	StatusUnsubscribed Status = "UNSUBSCRIBED"
	StatusHidden       Status = "HIDDEN"
	StatusInProgress   Status = "IN_PROGRESS"
	StatusCompleted    Status = "COMPLETED"
	StatusInStock      Status = "IN_STOCK"
	StatusOutOfStock   Status = "OUT_OF_STOCK"
)

var knownStatuses = map[Status]struct{}{
	StatusActive: {}, StatusInactive: {}, StatusDraft: {}, StatusPublished: {},
	StatusArchived: {}, StatusPending: {}, StatusResolved: {}, StatusRejected: {},
	StatusUnread: {}, StatusRead: {}, StatusUnsubscribed: {}, StatusHidden: {},
	StatusInProgress: {}, StatusCompleted: {}, StatusInStock: {}, StatusOutOfStock: {},
}

// Is reports whether s and other name the same status, ignoring case and
// the "-" / " " / "_" spelling differences found in stored data.
func (s Status) Is(other Status) bool {
	return normalizeStatus(string(s)) == normalizeStatus(string(other))
}

func (s Status) String() string { return string(s) }

// ParseStatus normalizes a user-supplied label ("in-stock" -> IN_STOCK) and
// rejects labels outside the known vocabulary.
func ParseStatus(raw string) (Status, error) {
	s := Status(normalizeStatus(raw))
	if _, ok := knownStatuses[s]; !ok {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

// Statuses lists the known vocabulary in a stable order.
func Statuses() []Status {
	return []Status{
		StatusActive, StatusInactive, StatusDraft, StatusPublished,
		StatusArchived, StatusPending, StatusResolved, StatusRejected,
		StatusUnread, StatusRead, StatusUnsubscribed, StatusHidden,
		StatusInProgress, StatusCompleted, StatusInStock, StatusOutOfStock,
	}
}

func normalizeStatus(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// Priority ranks contact requests.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ParsePriority normalizes case and rejects unknown priorities.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(raw)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", raw)
}

func (p Priority) Is(other Priority) bool {
	return strings.EqualFold(string(p), string(other))
}
