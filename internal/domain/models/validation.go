package models

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a field value that violates its domain rule. The
// record is left untouched when a setter returns one.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("trackermail", func(fl validator.FieldLevel) bool {
		return isValidEmail(fl.Field().String())
	})

	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return isValidMobile(fl.Field().String())
	})

	_ = v.RegisterValidation("website", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
	})

	return v
}

// isValidEmail checks the local@domain.tld shape: exactly one "@" with a
// non-empty local part, a "." somewhere after it, and no whitespace.
func isValidEmail(s string) bool {
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	at := strings.Index(s, "@")
	if at < 1 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func isValidMobile(s string) bool {
	if len(s) < 10 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func nonEmpty(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", newValidationError(field, "must not be empty")
	}
	return value, nil
}
