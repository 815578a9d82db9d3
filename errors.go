package formval

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError records one validation failure: the field it belongs to, the
// human-readable message, and the translation metadata the i18n package
// consumes. Error records are ephemeral; the engine rebuilds them from
// scratch on every pass.
type FieldError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is the ordered error list a full-form pass produces. Field
// order matches validator registration order, and each field appears at most
// once (first-failure-wins). It implements the error interface so callers can
// return it directly from handlers.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends an error record.
func (ve *ValidationErrors) Add(err FieldError) {
	*ve = append(*ve, err)
}

// Has reports whether the list contains an error for field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the message recorded for field, or "" when the field is valid.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Fields returns the field identifiers in error order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, err := range ve {
		fields = append(fields, err.Field)
	}
	return fields
}

// IsEmpty reports whether the list holds no errors.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors unwraps ValidationErrors from an error chain, or
// returns nil when err carries none.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
