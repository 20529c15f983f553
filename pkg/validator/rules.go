package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// NotBlank rejects non-strings and strings that are empty after trimming.
func NotBlank() Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && strings.TrimSpace(s) != ""
	}
}

// MinLen requires a string of at least n characters.
func MinLen(n int) Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && utf8.RuneCountInString(s) >= n
	}
}

// MaxLen requires a string of at most n characters.
func MaxLen(n int) Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && utf8.RuneCountInString(s) <= n
	}
}

// MinNum requires a value that parses as a number >= min.
func MinNum(min float64) Predicate {
	return func(v any) bool {
		f, err := cast.ToFloat64E(v)
		return err == nil && f >= min
	}
}

// MaxNum requires a value that parses as a number <= max.
func MaxNum(max float64) Predicate {
	return func(v any) bool {
		f, err := cast.ToFloat64E(v)
		return err == nil && f <= max
	}
}

// Matches requires a string matched by re. Input above MaxPredicateInput is rejected.
func Matches(re *regexp.Regexp) Predicate {
	return func(v any) bool {
		s, ok := boundedText(v)
		return ok && re.MatchString(s)
	}
}

// ParsePredicate resolves a predicate expression as used in schema documents:
// a built-in name ("email", "ipv4strict", ...) or one of "not_blank",
// "min_len:N", "max_len:N", "min:X", "max:X", "matches:RE".
func ParsePredicate(expr string) (Predicate, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(expr), ":")
	name = strings.ToLower(strings.TrimSpace(name))

	if !hasArg {
		if name == "not_blank" {
			return NotBlank(), nil
		}
		if p, ok := LookupPredicate(name); ok {
			return p, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, expr)
	}

	switch name {
	case "min_len", "max_len":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q needs a non-negative integer", ErrInvalidSpec, expr)
		}
		if name == "min_len" {
			return MinLen(n), nil
		}
		return MaxLen(n), nil
	case "min", "max":
		f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q needs a number", ErrInvalidSpec, expr)
		}
		if name == "min" {
			return MinNum(f), nil
		}
		return MaxNum(f), nil
	case "matches":
		re, err := regexp.Compile(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSpec, expr, err)
		}
		return Matches(re), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, expr)
}
