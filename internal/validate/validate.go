// Package validate holds the declarative request schemas applied at the
// HTTP boundary. Schemas are pure: they take raw field values and return
// normalized values plus a field-error list, with no transport coupling.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/firepost/backend/internal/apperr"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule constrains a single string field. Trimming happens before length
// checks, so surrounding whitespace never counts toward MinLen/MaxLen.
// Lengths count characters, not bytes.
type Rule struct {
	Field    string
	Label    string
	Required bool
	Trim     bool
	MinLen   int
	MaxLen   int
	Email    bool
}

type Schema []Rule

var (
	CreatePost = Schema{
		{Field: "title", Label: "Title", Required: true, Trim: true, MinLen: 3, MaxLen: 200},
		{Field: "content", Label: "Content", Required: true, Trim: true, MinLen: 5, MaxLen: 10000},
	}

	// Update replaces title and content wholesale, so the shape is the same.
	UpdatePost = CreatePost

	Signup = Schema{
		{Field: "email", Label: "Email", Required: true, Trim: true, Email: true},
		// bcrypt only hashes the first 72 bytes and x/crypto rejects
		// anything longer outright, so the schema stops it here.
		{Field: "password", Label: "Password", Required: true, MinLen: 8, MaxLen: 72},
	}

	Login = Schema{
		{Field: "email", Label: "Email", Required: true, Trim: true},
		{Field: "password", Label: "Password", Required: true},
	}
)

// Apply checks values against the schema. It returns the normalized
// (trimmed) values and any violations; an empty error slice means the
// payload passed.
func (s Schema) Apply(values map[string]string) (map[string]string, []apperr.FieldError) {
	normalized := make(map[string]string, len(values))
	var errs []apperr.FieldError

	for _, rule := range s {
		value := values[rule.Field]
		if rule.Trim {
			value = strings.TrimSpace(value)
		}
		normalized[rule.Field] = value

		if value == "" {
			if rule.Required {
				errs = append(errs, apperr.FieldError{
					Field:   rule.Field,
					Message: rule.Label + " is required",
				})
			}
			continue
		}

		if rule.MinLen > 0 && utf8.RuneCountInString(value) < rule.MinLen {
			errs = append(errs, apperr.FieldError{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s must be at least %d characters", rule.Label, rule.MinLen),
			})
			continue
		}
		if rule.MaxLen > 0 && utf8.RuneCountInString(value) > rule.MaxLen {
			errs = append(errs, apperr.FieldError{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s cannot exceed %d characters", rule.Label, rule.MaxLen),
			})
			continue
		}
		if rule.Email && !emailPattern.MatchString(value) {
			errs = append(errs, apperr.FieldError{
				Field:   rule.Field,
				Message: "Invalid email address",
			})
		}
	}

	return normalized, errs
}
