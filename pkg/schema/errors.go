package schema

import "errors"

var (
	// ErrEmptyInput is returned by Validate when there is nothing to validate.
	// It wraps validator.ErrInvalidArgument.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidDocument is returned when a schema document cannot be decoded.
	ErrInvalidDocument = errors.New("invalid schema document")

	// ErrDuplicateKey is returned when two fields share a key.
	ErrDuplicateKey = errors.New("duplicate field key")

	// ErrEmptyKey is returned when a field has no key.
	ErrEmptyKey = errors.New("empty field key")
)
