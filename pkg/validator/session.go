package validator

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/reqvalidator/pkg/logger"
)

// Session accumulates normalized values and validation errors across many
// Apply calls. It is not safe for concurrent use; create one per request.
type Session struct {
	data   map[string]any
	errs   ValidationErrors
	cfg    Config
	logger *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithConfig replaces the default coercion settings. Zero fields keep their defaults.
func WithConfig(cfg Config) SessionOption {
	return func(s *Session) { s.cfg = cfg.withDefaults() }
}

// WithLogger routes rejected-field diagnostics to l at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession returns an empty session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		data:   make(map[string]any),
		cfg:    DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply validates raw[key] against spec and records the outcome on the
// session. Field failures are accumulated and Apply still returns nil; a
// non-nil error means the call itself was invalid (empty input, key or spec,
// or a misconfigured spec) and nothing was recorded.
//
// A key is written to the session data when it was defaulted, or when it was
// present and passed coercion, the membership check and every custom test.
// Custom tests always see the raw value, not the coerced one.
func (s *Session) Apply(raw map[string]any, key string, spec FieldSpec) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: raw input is empty", ErrInvalidArgument)
	}
	conv, err := s.prepare(key, spec)
	if err != nil {
		return err
	}

	v, present := raw[key]
	if !present {
		s.absent(key, spec)
		return nil
	}

	value := v
	rejected := false

	if conv != nil {
		out, ok := conv(&coercion{cfg: s.cfg, data: s.data, layout: spec.format}, v)
		if ok {
			value = out
		} else {
			s.reject(coercionError(key, spec.vtype))
			rejected = true
		}
	}

	// membership of a value that failed coercion is meaningless
	if spec.hasIn && !rejected && !contains(spec.in, value) {
		s.reject(membershipError(key, spec.in))
		rejected = true
	}

	for _, e := range runTests(key, spec.tests, v) {
		s.reject(e)
		rejected = true
	}

	if !rejected {
		s.data[key] = value
	}
	return nil
}

// ApplyAbsent records the outcome for a key the request did not carry: the
// default is stored, a required key is reported missing and an optional one
// is skipped. It serves callers whose whole input is empty, which Apply
// refuses. Key and spec are checked as in Apply.
func (s *Session) ApplyAbsent(key string, spec FieldSpec) error {
	if _, err := s.prepare(key, spec); err != nil {
		return err
	}
	s.absent(key, spec)
	return nil
}

// prepare runs the fatal checks on key and spec and resolves the coercer.
func (s *Session) prepare(key string, spec FieldSpec) (coercer, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidArgument)
	}
	if spec.IsZero() {
		return nil, fmt.Errorf("%w: spec for %q is empty", ErrInvalidArgument, key)
	}
	if err := spec.Err(); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	if spec.vtype == TypeNone {
		return nil, nil
	}
	fn, ok := lookupCoercer(spec.vtype)
	if !ok {
		return nil, fmt.Errorf("%w: %s for %q", ErrUnknownType, spec.vtype, key)
	}
	return fn, nil
}

func (s *Session) absent(key string, spec FieldSpec) {
	if def, ok := spec.Default(); ok {
		s.data[key] = def
		return
	}
	if spec.Must() {
		s.reject(missingError(key))
	}
}

func (s *Session) reject(e ValidationError) {
	s.errs = append(s.errs, e)
	s.logger.Debug("field rejected",
		logger.Component("validator"),
		logger.Field(e.Field),
		slog.String("reason", e.TranslationKey),
	)
}

// Data returns a copy of the normalized values.
func (s *Session) Data() map[string]any {
	return maps.Clone(s.data)
}

// Value returns the normalized value stored for key.
func (s *Session) Value(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Errors returns a copy of the accumulated errors in validation order.
func (s *Session) Errors() ValidationErrors {
	return slices.Clone(s.errs)
}

// Messages returns every error as "<field>: <message>".
func (s *Session) Messages() []string {
	return s.errs.Messages()
}

// Valid reports whether no error has been recorded.
func (s *Session) Valid() bool {
	return len(s.errs) == 0
}

// Err returns nil for a valid session and the accumulated ValidationErrors otherwise.
func (s *Session) Err() error {
	if s.Valid() {
		return nil
	}
	return s.Errors()
}
