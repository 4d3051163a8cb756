// Package validate holds the record schema checker shared by the form
// dialog and the API server.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Validator returns the shared instance with the "status" and "priority"
// tags registered. Field names are reported by their json name.
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseStatus(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
			_, err := domain.ParsePriority(fl.Field().String())
			return err == nil
		})
	})
	return v
}

// Struct validates s and returns a FieldErrors on schema violations.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

// FieldErrors maps a json field name to a human readable message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+f[k])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of " + fe.Param()
	case "status":
		return "must be a known status"
	case "priority":
		return "must be one of LOW, MEDIUM, HIGH, URGENT"
	default:
		return "is invalid"
	}
}
