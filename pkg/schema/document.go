package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reqvalidator/pkg/validator"
)

// document is the on-disk form of a schema. JSON documents decode too.
//
//	name: signup
//	fields:
//	  - key: email
//	    type: email
//	  - key: age
//	    type: int
//	    in: [18, 19, 20]
//	  - key: role
//	    default: member
//	    test: [not_blank, "max_len:32"]
type document struct {
	Name   string          `yaml:"name"`
	Fields []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Key     string         `yaml:"key"`
	Type    string         `yaml:"type"`
	Default yaml.Node      `yaml:"default"`
	Must    *bool          `yaml:"must"`
	In      []any          `yaml:"in"`
	Test    predicateNames `yaml:"test"`
	Format  string         `yaml:"format"`
}

// predicateNames accepts a single expression or a list of them.
type predicateNames []string

func (p *predicateNames) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*p = predicateNames{n.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := n.Decode(&list); err != nil {
			return err
		}
		*p = list
		return nil
	}
	return fmt.Errorf("line %d: test must be a string or a list of strings", n.Line)
}

// ParseOption configures document parsing.
type ParseOption func(*parser)

type parser struct {
	predicates map[string]validator.Predicate
}

// WithPredicate registers a named predicate usable in "test" entries. It
// takes precedence over a built-in of the same name.
func WithPredicate(name string, p validator.Predicate) ParseOption {
	return func(ps *parser) {
		if name != "" && p != nil {
			ps.predicates[name] = p
		}
	}
}

// Parse decodes a YAML or JSON schema document. Unknown document keys,
// unknown types and unknown predicates are errors.
func Parse(data []byte, opts ...ParseOption) (*Schema, error) {
	ps := &parser{predicates: make(map[string]validator.Predicate)}
	for _, opt := range opts {
		opt(ps)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	fields := make([]Field, 0, len(doc.Fields))
	for i, fd := range doc.Fields {
		f, err := ps.field(fd)
		if err != nil {
			return nil, fmt.Errorf("%w: field #%d (%s): %w", ErrInvalidDocument, i, fd.Key, err)
		}
		fields = append(fields, f)
	}
	return New(doc.Name, fields...)
}

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string, opts ...ParseOption) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	return Parse(data, opts...)
}

func (ps *parser) field(fd fieldDocument) (Field, error) {
	var opts []validator.FieldOption

	vt := validator.TypeNone
	if fd.Type != "" {
		t, err := validator.ParseVType(fd.Type)
		if err != nil {
			return Field{}, err
		}
		vt = t
		opts = append(opts, validator.WithType(t))
	}

	// a zero node means the key was absent; "default: null" is a real nil default
	if fd.Default.Kind != 0 {
		var def any
		if err := fd.Default.Decode(&def); err != nil {
			return Field{}, fmt.Errorf("default: %w", err)
		}
		opts = append(opts, validator.WithDefault(def))
	}

	if fd.Must != nil {
		if *fd.Must {
			opts = append(opts, validator.Required())
		} else {
			opts = append(opts, validator.Optional())
		}
	}

	if fd.In != nil {
		opts = append(opts, validator.In(members(vt, fd.In)...))
	}

	for _, expr := range fd.Test {
		p, err := ps.predicate(expr)
		if err != nil {
			return Field{}, err
		}
		opts = append(opts, validator.NamedTest(expr, p))
	}

	if fd.Format != "" {
		opts = append(opts, validator.WithFormat(fd.Format))
	}

	// a bare key is a required pass-through field
	if len(opts) == 0 {
		opts = append(opts, validator.Required())
	}

	return F(fd.Key, opts...), nil
}

func (ps *parser) predicate(expr string) (validator.Predicate, error) {
	if p, ok := ps.predicates[expr]; ok {
		return p, nil
	}
	return validator.ParsePredicate(expr)
}

// members converts numeric "in" values to the Go type the field's coercion
// yields, since YAML decodes 1 as int and 1.5 as float64.
func members(t validator.VType, in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
		switch v.(type) {
		case int, int64, uint64, float64:
		default:
			continue
		}
		switch t {
		case validator.TypeFloat, validator.TypePositive, validator.TypeNegative:
			if f, err := cast.ToFloat64E(v); err == nil {
				out[i] = f
			}
		case validator.TypeInt:
			switch n := v.(type) {
			case float64:
				if n == math.Trunc(n) && n >= math.MinInt && n < -math.MinInt {
					out[i] = int(n)
				}
			case int64:
				out[i] = int(n)
			case uint64:
				if n <= math.MaxInt {
					out[i] = int(n)
				}
			}
		}
	}
	return out
}
