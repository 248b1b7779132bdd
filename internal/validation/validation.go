// Package validation checks candidate persons against their field constraints
// before they reach the store.
//
// Constraints live as validator tags on domain.Person. This package runs them
// with github.com/go-playground/validator/v10 and turns the result into an
// ordered list of (field, message) pairs the service can report to clients.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/leska/people-api/internal/domain"
)

// Violation is one failed constraint on one field.
// Field is the JSON name of the field (e.g. "email").
type Violation struct {
	Field   string
	Message string
}

// Violations is the ordered list of failed constraints for a single value.
// Order follows the struct field declaration order.
type Violations []Violation

// Message concatenates every violation as "<field>: <message>;".
// Segments are not separated: "name: ...;age: ...;".
func (v Violations) Message() string {
	var b strings.Builder
	for _, viol := range v {
		b.WriteString(viol.Field)
		b.WriteString(": ")
		b.WriteString(viol.Message)
		b.WriteString(";")
	}
	return b.String()
}

// validate is safe for concurrent use and caches struct metadata, so a single
// package-level instance is shared by every request.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Person evaluates every constraint on p and returns the violations in field
// declaration order. validator stops at the first failing rule of a field but
// always moves on to the next field, so each field contributes at most one
// violation. A nil result means p is valid.
func Person(p domain.Person) Violations {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable when validate is handed a non-struct, which Person never does.
		return Violations{{Field: "person", Message: err.Error()}}
	}

	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

// describe converts a single validator.FieldError into a human-readable message.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "should not be empty"
	case "min":
		if fe.Kind() == reflect.String {
			return "should be at least " + fe.Param() + " characters"
		}
		return "should be at least " + fe.Param()
	case "gt":
		return "should be greater than " + fe.Param()
	case "lte":
		return "should be at most " + fe.Param()
	case "email":
		return "should be a valid email"
	default:
		if fe.Param() != "" {
			return "failed " + fe.Tag() + "=" + fe.Param()
		}
		return "failed " + fe.Tag()
	}
}
