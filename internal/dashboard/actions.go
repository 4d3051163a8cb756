package dashboard

import (
	"context"
	"errors"
	"strings"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/notify"
)

// ErrMissingFields is returned when a required input of an action is blank.
var ErrMissingFields = errors.New("missing required fields")

// SendEmail checks the composed message; delivery is not implemented.
func SendEmail(n notify.Notifier, subject, message string) error {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		n.Notify(notify.MissingFields())
		return ErrMissingFields
	}
	n.Notify(notify.NotImplemented())
	return nil
}

// ExportCSV is not implemented.
func ExportCSV(n notify.Notifier) {
	n.Notify(notify.NotImplemented())
}

// ReplyToContact marks the contact replied and read, then reports that
// sending the reply is not implemented.
func ReplyToContact(ctx context.Context, s *Screen[domain.Contact], n notify.Notifier, id int64) (domain.Contact, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return cur, err
	}
	cur.Replied = true
	cur.Status = domain.StatusRead
	saved, err := s.repo.Update(ctx, id, cur)
	if err != nil {
		return saved, err
	}
	s.invalidate(id)
	n.Notify(notify.NotImplemented())
	return saved, nil
}
