package form

import (
	"strconv"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
)

// Field binds one edit value to one record field.
type Field[T any] struct {
	Name string
	get  func(T) string
	set  func(*T, string) error
}

func Text[T any](name string, at func(*T) *string) Field[T] {
	return Field[T]{
		Name: name,
		get:  func(r T) string { return *at(&r) },
		set:  func(r *T, s string) error { *at(r) = s; return nil },
	}
}

func List[T any](name string, at func(*T) *[]string) Field[T] {
	return Field[T]{
		Name: name,
		get:  func(r T) string { return JoinList(*at(&r)) },
		set:  func(r *T, s string) error { *at(r) = SplitList(s); return nil },
	}
}

func Float[T any](name string, at func(*T) *float64) Field[T] {
	return Field[T]{
		Name: name,
		get:  func(r T) string { return strconv.FormatFloat(*at(&r), 'f', -1, 64) },
		set: func(r *T, s string) error {
			f, err := ParseFloat(s)
			*at(r) = f
			return err
		},
	}
}

func Int[T any](name string, at func(*T) *int) Field[T] {
	return Field[T]{
		Name: name,
		get:  func(r T) string { return strconv.Itoa(*at(&r)) },
		set: func(r *T, s string) error {
			n, err := ParseInt(s)
			*at(r) = n
			return err
		},
	}
}

func Bool[T any](name string, at func(*T) *bool) Field[T] {
	return Field[T]{
		Name: name,
		get:  func(r T) string { return strconv.FormatBool(*at(&r)) },
		set: func(r *T, s string) error {
			b, err := ParseBool(s)
			*at(r) = b
			return err
		},
	}
}

func Date[T any](name string, at func(*T) *string) Field[T] {
	return Field[T]{
		Name: name,
		get:  func(r T) string { return *at(&r) },
		set: func(r *T, s string) error {
			d, err := ParseDate(s)
			*at(r) = d
			return err
		},
	}
}

// StatusOf keeps unknown input as typed so the schema check reports it.
func StatusOf[T any](at func(*T) *domain.Status) Field[T] {
	return Field[T]{
		Name: "status",
		get:  func(r T) string { return string(*at(&r)) },
		set: func(r *T, s string) error {
			if st, err := domain.ParseStatus(s); err == nil {
				*at(r) = st
				return nil
			}
			*at(r) = domain.Status(s)
			return nil
		},
	}
}

func PriorityOf[T any](at func(*T) *domain.Priority) Field[T] {
	return Field[T]{
		Name: "priority",
		get:  func(r T) string { return string(*at(&r)) },
		set: func(r *T, s string) error {
			if p, err := domain.ParsePriority(s); err == nil {
				*at(r) = p
				return nil
			}
			*at(r) = domain.Priority(s)
			return nil
		},
	}
}
