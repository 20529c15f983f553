// Package validator validates and coerces raw request parameters into typed
// values while collecting every failure instead of stopping at the first one.
//
// A Session is the accumulator for one request. Each call to Session.Apply
// looks up one key in the raw input, applies the field's FieldSpec and records
// either a normalized value or one or more ValidationError entries:
//
//	s := validator.NewSession()
//	raw := map[string]any{"age": "30", "email": "jo@example.com"}
//
//	_ = s.Apply(raw, "age", validator.Field(validator.WithType(validator.TypeInt)))
//	_ = s.Apply(raw, "email", validator.Field(validator.WithType(validator.TypeEmail)))
//	_ = s.Apply(raw, "page", validator.Field(validator.WithDefault(1)))
//
//	if !s.Valid() {
//	    return s.Err() // ValidationErrors, in validation order
//	}
//	data := s.Data() // {"age": 30, "email": "jo@example.com", "page": 1}
//
// # Field pipeline
//
// For a present key Apply runs, in order: coercion to the VType, membership
// against In values, then every custom Test predicate against the raw value.
// The key is written only if none of them failed. An absent key takes its
// default verbatim, is reported as missing, or is skipped when Optional.
//
// # Errors
//
// Apply returns an error only for invalid calls: ErrInvalidArgument for an
// empty input map, key or spec, and ErrUnknownType or ErrInvalidSpec for a
// misconfigured spec. Field failures never surface as Apply errors; read them
// from Session.Errors or Session.Messages.
//
// # Predicates
//
// IsEmail, IsMobilePhone, IsPhone, IsURL, IsMongoID, IsIPV4 and friends are
// plain func(any) bool values usable both as built-in type checks and as
// custom tests. Patterns are compiled once at package init and text longer
// than MaxPredicateInput is rejected before matching.
//
// A Session is not safe for concurrent use. Everything else in the package is
// immutable and may be shared.
package validator
