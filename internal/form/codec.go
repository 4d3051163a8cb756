package form

import (
	"fmt"
	"strings"
)

// Codec converts between a record and its edit values.
type Codec[T any] struct {
	fields   []Field[T]
	template func() T
	derive   func(T) T
}

// NewCodec builds a codec over fields. template returns the record a create
// dialog starts from; nil means the zero value.
func NewCodec[T any](template func() T, fields ...Field[T]) Codec[T] {
	return Codec[T]{fields: fields, template: template}
}

// WithDerive returns a copy of c that recomputes derived fields after decode.
func (c Codec[T]) WithDerive(fn func(T) T) Codec[T] {
	c.derive = fn
	return c
}

// Fields returns the editable field names in form order.
func (c Codec[T]) Fields() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.Name
	}
	return names
}

func (c Codec[T]) field(name string) (Field[T], bool) {
	for _, f := range c.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Has reports whether name is an editable field.
func (c Codec[T]) Has(name string) bool {
	_, ok := c.field(name)
	return ok
}

func (c Codec[T]) zero() T {
	if c.template != nil {
		return c.template()
	}
	var zero T
	return zero
}

// Empty returns the values of a fresh create form.
func (c Codec[T]) Empty() Values {
	return c.Encode(c.zero())
}

// Encode flattens r into edit values, one entry per field.
func (c Codec[T]) Encode(r T) Values {
	v := make(Values, len(c.fields))
	for _, f := range c.fields {
		v[f.Name] = f.get(r)
	}
	return v
}

// Decode builds a record from v. Absent fields keep their template value;
// unknown names and unparseable values are reported per field.
func (c Codec[T]) Decode(v Values) (T, error) {
	r := c.zero()
	bad := map[string]string{}
	for name, raw := range v {
		f, ok := c.field(name)
		if !ok {
			bad[name] = "is not a field"
			continue
		}
		if err := f.set(&r, strings.TrimSpace(raw)); err != nil {
			bad[name] = err.Error()
		}
	}
	if len(bad) > 0 {
		return r, &ValidationError{Fields: bad}
	}
	if c.derive != nil {
		r = c.derive(r)
	}
	return r, nil
}

// ValidationError lists the fields a submitted form got wrong.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := Values(e.Fields).Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}
