package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Translation keys attached to accumulated errors.
const (
	KeyRequired   = "validation.required"
	KeyMembership = "validation.in"
	KeyCustomTest = "validation.test"
	keyTypePrefix = "validation.type."
)

// ValidationError represents a single rejected field with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// String renders the error as "<field>: <message>".
func (e ValidationError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is the ordered list of failures collected by a Session.
// Order is validation order; duplicates are kept.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the distinct failing fields in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages renders every error as "<field>: <message>", preserving order.
func (ve ValidationErrors) Messages() []string {
	out := make([]string, 0, len(ve))
	for _, err := range ve {
		out = append(out, err.String())
	}
	return out
}

// Map groups messages by field, the shape HTTP responses use.
func (ve ValidationErrors) Map() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

func missingError(key string) ValidationError {
	return ValidationError{
		Field:          key,
		Message:        "missing parameter",
		TranslationKey: KeyRequired,
		TranslationValues: map[string]any{
			"field": key,
		},
	}
}

func coercionError(key string, t VType) ValidationError {
	return ValidationError{
		Field:          key,
		Message:        fmt.Sprintf("must be a valid %s", t.Description()),
		TranslationKey: keyTypePrefix + t.String(),
		TranslationValues: map[string]any{
			"field": key,
			"type":  t.String(),
		},
	}
}

func membershipError(key string, allowed []any) ValidationError {
	return ValidationError{
		Field:          key,
		Message:        fmt.Sprintf("must be one of %v", allowed),
		TranslationKey: KeyMembership,
		TranslationValues: map[string]any{
			"field":   key,
			"allowed": allowed,
		},
	}
}

func customTestError(key string, index int, name string) ValidationError {
	msg := "failed validation"
	if name != "" {
		msg = fmt.Sprintf("failed %s check", name)
	}
	return ValidationError{
		Field:          key,
		Message:        msg,
		TranslationKey: KeyCustomTest,
		TranslationValues: map[string]any{
			"field": key,
			"index": index,
			"test":  name,
		},
	}
}
