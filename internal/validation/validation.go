// Package validation holds the pure field validators used by the
// bookmark service. Every failure is an apperr.Validation error so the
// handlers can answer 400 without inspecting messages.
package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/recollect/recollect/internal/apperr"
)

// StringOptions bounds a string field.
type StringOptions struct {
	Required  bool
	MinLength int
	MaxLength int
}

// NumberOptions bounds a numeric field.
type NumberOptions struct {
	Min     int
	Max     int
	Integer bool
}

// URL checks that value parses as an absolute URL with an http or
// https scheme. The field name is quoted in the error message.
func URL(value, field string) error {
	if value == "" {
		return apperr.Validationf("Field %q is required and must be a string", field)
	}

	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return apperr.Validationf("Field %q is not a valid URL", field)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return nil
	default:
		return apperr.Validationf("Field %q must use HTTP or HTTPS protocol", field)
	}
}

// RequiredString trims value and enforces presence and length bounds.
// It returns the trimmed value.
func RequiredString(value, field string, opts StringOptions) (string, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if opts.Required {
			return "", apperr.Validationf("Field %q is required", field)
		}
		return "", nil
	}

	if opts.MinLength > 0 && len(trimmed) < opts.MinLength {
		return "", apperr.Validationf("Field %q must be at least %d characters", field, opts.MinLength)
	}

	if opts.MaxLength > 0 && len(trimmed) > opts.MaxLength {
		return "", apperr.Validationf("Field %q cannot exceed %d characters", field, opts.MaxLength)
	}

	return trimmed, nil
}

// BoundedNumber parses value and enforces integer and range bounds.
// The wording matches the public API error contract for the limit
// query parameter.
func BoundedNumber(value, field string, opts NumberOptions) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, apperr.Validationf("Parameter %q must be a valid number", field)
	}

	if opts.Integer && f != float64(int64(f)) {
		return 0, apperr.Validationf("Parameter %q must be an integer", field)
	}

	n := int(f)

	if n < opts.Min {
		return 0, apperr.Validationf("Parameter %q must be at least %d", field, opts.Min)
	}

	if opts.Max > 0 && n > opts.Max {
		return 0, apperr.Validationf("Parameter %q cannot exceed %d", field, opts.Max)
	}

	return n, nil
}
