// Package form is the create/edit dialog of a list screen: a flat
// field->string edit representation, one codec per record type and the
// dialog state machine that turns edits into a validated record.
package form

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
)

// Values is the edit representation of a record.
type Values map[string]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

// Keys returns the field names, sorted.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListSeparator joins list fields for editing.
const ListSeparator = ", "

// SplitList splits a comma separated input, trimming items and dropping
// empty ones. It returns an empty, non-nil slice for blank input.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// ParseFloat parses a decimal input; blank is 0.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

// ParseInt parses an integer input; blank is 0.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

// ParseBool accepts true/false, yes/no, on/off and 1/0; blank is false.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "no", "off", "0":
		return false, nil
	case "true", "yes", "on", "1":
		return true, nil
	}
	return false, fmt.Errorf("%q is not a yes/no value", s)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the calendar date as
// YYYY-MM-DD. Blank input stays blank.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return "", fmt.Errorf("%q is not a date (YYYY-MM-DD)", s)
	}
	return t.Format(domain.DateLayout), nil
}
