package validator

import (
	"fmt"
	"slices"
)

// Predicate is a stateless check over a raw value.
type Predicate func(value any) bool

type namedPredicate struct {
	name string
	fn   Predicate
}

// FieldSpec describes how one input key is validated. It is immutable once
// built with Field.
type FieldSpec struct {
	vtype      VType
	def        any
	hasDefault bool
	optional   bool
	in         []any
	hasIn      bool
	tests      []namedPredicate
	format     string
	err        error
	configured bool
}

// FieldOption configures a FieldSpec.
type FieldOption func(*FieldSpec)

// Field builds a spec from options. An option that cannot be honoured (unknown
// type tag, nil predicate) is kept on the spec and surfaced by Err and by
// Session.Apply, so a broken spec never validates silently.
func Field(opts ...FieldOption) FieldSpec {
	var s FieldSpec
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&s)
		s.configured = true
	}
	return s
}

// WithType sets the coercion target.
func WithType(t VType) FieldOption {
	return func(s *FieldSpec) {
		if !t.Valid() {
			s.setErr(fmt.Errorf("%w: %s", ErrUnknownType, t))
			return
		}
		s.vtype = t
	}
}

// WithDefault stores v verbatim when the key is absent. nil is a valid default.
func WithDefault(v any) FieldOption {
	return func(s *FieldSpec) {
		s.def = v
		s.hasDefault = true
	}
}

// Optional makes an absent key without default a silent skip.
func Optional() FieldOption {
	return func(s *FieldSpec) { s.optional = true }
}

// Required restores the default behaviour: an absent key is an error.
func Required() FieldOption {
	return func(s *FieldSpec) { s.optional = false }
}

// In restricts the coerced value to the given set.
func In(values ...any) FieldOption {
	return func(s *FieldSpec) {
		s.in = append(s.in, values...)
		s.hasIn = true
	}
}

// Test adds custom predicates evaluated against the raw value. A single
// predicate and a list behave the same: each failing one adds its own error.
func Test(preds ...Predicate) FieldOption {
	return func(s *FieldSpec) {
		for i, p := range preds {
			if p == nil {
				s.setErr(fmt.Errorf("%w: nil predicate at position %d", ErrInvalidSpec, i))
				continue
			}
			s.tests = append(s.tests, namedPredicate{fn: p})
		}
	}
}

// NamedTest adds a custom predicate whose name appears in its error message.
func NamedTest(name string, pred Predicate) FieldOption {
	return func(s *FieldSpec) {
		if pred == nil {
			s.setErr(fmt.Errorf("%w: nil predicate %q", ErrInvalidSpec, name))
			return
		}
		s.tests = append(s.tests, namedPredicate{name: name, fn: pred})
	}
}

// WithFormat sets the date layout used when the session holds no "format" value.
func WithFormat(layout string) FieldOption {
	return func(s *FieldSpec) { s.format = layout }
}

func (s *FieldSpec) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s FieldSpec) Type() VType { return s.vtype }

// Default returns the default value and whether one was set.
func (s FieldSpec) Default() (any, bool) { return s.def, s.hasDefault }

// Must reports whether an absent key without default is an error.
func (s FieldSpec) Must() bool { return !s.optional }

// Allowed returns a copy of the membership set and whether one was set.
func (s FieldSpec) Allowed() ([]any, bool) { return slices.Clone(s.in), s.hasIn }

func (s FieldSpec) Format() string { return s.format }

// TestCount returns the number of custom predicates.
func (s FieldSpec) TestCount() int { return len(s.tests) }

// Err returns the first construction error, if any.
func (s FieldSpec) Err() error { return s.err }

// IsZero reports whether no option was applied.
func (s FieldSpec) IsZero() bool { return !s.configured }
