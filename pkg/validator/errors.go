package validator

import "errors"

// Fatal errors returned by Session.Apply. They abort the current call and are
// never accumulated into the session.
var (
	// ErrInvalidArgument is returned when the raw input, key or spec is empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownType is returned when a spec names a type tag outside VType.
	ErrUnknownType = errors.New("unknown validation type")

	// ErrInvalidSpec is returned when a field option was rejected at construction.
	ErrInvalidSpec = errors.New("invalid field spec")

	// ErrUnknownPredicate is returned when a predicate name cannot be resolved.
	ErrUnknownPredicate = errors.New("unknown predicate")
)
