package schema

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/reqvalidator/pkg/validator"
)

// Field binds an input key to its spec.
type Field struct {
	Key  string
	Spec validator.FieldSpec
}

// F is shorthand for Field{Key: key, Spec: validator.Field(opts...)}.
func F(key string, opts ...validator.FieldOption) Field {
	return Field{Key: key, Spec: validator.Field(opts...)}
}

// Schema is an ordered list of fields validated together. Fields are applied
// in declaration order, so a "format" field declared before date fields sets
// their layout.
type Schema struct {
	name   string
	fields []Field
}

// New builds a schema. It returns ErrEmptyKey, ErrDuplicateKey or the spec's
// own construction error for a broken field list.
func New(name string, fields ...Field) (*Schema, error) {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Key == "" {
			return nil, fmt.Errorf("%w: field #%d", ErrEmptyKey, i)
		}
		if seen[f.Key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, f.Key)
		}
		seen[f.Key] = true
		if f.Spec.IsZero() {
			return nil, fmt.Errorf("field %q: %w: no options", f.Key, validator.ErrInvalidSpec)
		}
		if err := f.Spec.Err(); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
	}
	return &Schema{name: name, fields: slices.Clone(fields)}, nil
}

// MustNew is New that panics, for package-level schema vars.
func MustNew(name string, fields ...Field) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the field list.
func (s *Schema) Fields() []Field { return slices.Clone(s.fields) }

// Keys returns the field keys in declaration order.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Validate applies every field to raw in one new session and returns it.
// Field failures are read from the session; the error is non-nil only for
// empty input or a fatal Apply error.
func (s *Schema) Validate(raw map[string]any, opts ...validator.SessionOption) (*validator.Session, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrEmptyInput, validator.ErrInvalidArgument)
	}
	session := validator.NewSession(opts...)
	if err := s.ApplyTo(session, raw); err != nil {
		return nil, err
	}
	return session, nil
}

// ValidateEmpty resolves every field as absent in one new session: defaults
// are stored, required fields are reported missing and optional ones are
// skipped. Use it where an empty input is legitimate, such as a list endpoint
// whose parameters all have defaults.
func (s *Schema) ValidateEmpty(opts ...validator.SessionOption) (*validator.Session, error) {
	session := validator.NewSession(opts...)
	for _, f := range s.fields {
		if err := session.ApplyAbsent(f.Key, f.Spec); err != nil {
			return nil, fmt.Errorf("schema %q: %w", s.name, err)
		}
	}
	return session, nil
}

// ApplyTo applies every field to an existing session, for callers that
// combine several schemas or add fields by hand.
func (s *Schema) ApplyTo(session *validator.Session, raw map[string]any) error {
	for _, f := range s.fields {
		if err := session.Apply(raw, f.Key, f.Spec); err != nil {
			return fmt.Errorf("schema %q: %w", s.name, err)
		}
	}
	return nil
}
