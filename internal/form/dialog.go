package form

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/validate"
)

var (
	ErrClosed       = errors.New("dialog is not open")
	ErrUnknownField = errors.New("unknown field")
)

// SubmitFunc persists the record a dialog produced.
type SubmitFunc[T any] func(ctx context.Context, rec T) (T, error)

// Dialog is the create/edit form of one record type. It is either closed
// or open, and when open it is either blank (create) or seeded (edit).
// A Dialog is not safe for concurrent use.
type Dialog[T domain.Record[T]] struct {
	codec   Codec[T]
	now     func() time.Time
	open    bool
	editing *T
	values  Values
}

type DialogOption[T domain.Record[T]] func(*Dialog[T])

func WithClock[T domain.Record[T]](now func() time.Time) DialogOption[T] {
	return func(d *Dialog[T]) { d.now = now }
}

func NewDialog[T domain.Record[T]](codec Codec[T], opts ...DialogOption[T]) *Dialog[T] {
	d := &Dialog[T]{codec: codec, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open starts a create form seeded with the codec template.
func (d *Dialog[T]) Open() {
	d.open = true
	d.editing = nil
	d.values = d.codec.Empty()
}

// OpenEdit starts an edit form seeded with rec.
func (d *Dialog[T]) OpenEdit(rec T) {
	d.open = true
	d.editing = &rec
	d.values = d.codec.Encode(rec)
}

func (d *Dialog[T]) Close() {
	d.open = false
	d.editing = nil
	d.values = nil
}

func (d *Dialog[T]) IsOpen() bool { return d.open }

// Editing returns the record being edited, if any.
func (d *Dialog[T]) Editing() (T, bool) {
	if d.editing == nil {
		var zero T
		return zero, false
	}
	return *d.editing, true
}

// Values returns a copy of the current edit values.
func (d *Dialog[T]) Values() Values {
	return d.values.clone()
}

// Set changes one field.
func (d *Dialog[T]) Set(field, value string) error {
	if !d.open {
		return ErrClosed
	}
	if !d.codec.Has(field) {
		return fmt.Errorf("%w %q", ErrUnknownField, field)
	}
	d.values[field] = value
	return nil
}

// Submit decodes and validates the form and hands the record to fn. An
// edit keeps the original id and creation date; a create on a dated
// record is stamped with today's date. The dialog closes only once fn
// succeeds; on any error it stays open with its values.
func (d *Dialog[T]) Submit(ctx context.Context, fn SubmitFunc[T]) (T, error) {
	var zero T
	if !d.open {
		return zero, ErrClosed
	}

	rec, err := d.codec.Decode(d.values)
	if err != nil {
		return zero, err
	}
	rec = d.stamp(rec)

	if err := validate.Struct(rec); err != nil {
		var fe validate.FieldErrors
		if errors.As(err, &fe) {
			return zero, &ValidationError{Fields: fe}
		}
		return zero, err
	}

	saved, err := fn(ctx, rec)
	if err != nil {
		return zero, err
	}
	d.Close()
	return saved, nil
}

func (d *Dialog[T]) stamp(rec T) T {
	if d.editing != nil {
		orig := *d.editing
		rec = rec.WithID(orig.GetID())
		if s, ok := any(orig).(domain.Stamped[T]); ok {
			if r, ok := any(rec).(domain.Stamped[T]); ok {
				rec = r.WithCreatedAt(s.GetCreatedAt())
			}
		}
		return rec
	}
	if r, ok := any(rec).(domain.Stamped[T]); ok {
		rec = r.WithCreatedAt(domain.Today(d.now()))
	}
	return rec
}
