package validator

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// FormatKey is the session data key whose string value overrides the layout
// for DATETIME and DATE fields.
const FormatKey = "format"

// coercer converts a raw value into its typed form, reporting false on failure.
type coercer func(c *coercion, v any) (any, bool)

type coercion struct {
	cfg    Config
	data   map[string]any
	layout string
}

var coercers map[VType]coercer

func init() {
	coercers = map[VType]coercer{
		TypeString:      notNull(coerceString),
		TypeInt:         notNull(coerceInt),
		TypeFloat:       notNull(coerceFloat),
		TypePositive:    notNull(coerceSigned(1)),
		TypeNegative:    notNull(coerceSigned(-1)),
		TypeBoolean:     notNull(coerceBool),
		TypeList:        coerceList,
		TypeDict:        coerceDict,
		TypeJSON:        coerceJSON,
		TypeEmail:       check(IsEmail),
		TypeURL:         check(IsURL),
		TypeMobilePhone: check(IsMobilePhone),
		TypePhone:       check(IsPhone),
		TypeMongoID:     check(IsMongoID),
		TypeIPV4:        check(IsIPV4),
		TypeIPV6:        check(IsIPV6),
		TypeDateTime:    coerceTime(false),
		TypeDate:        coerceTime(true),
		TypeUUID:        coerceUUID,
		TypeObjectID:    coerceObjectID,
	}
}

func lookupCoercer(t VType) (coercer, bool) {
	fn, ok := coercers[t]
	return fn, ok
}

func check(p Predicate) coercer {
	return func(_ *coercion, v any) (any, bool) {
		if !p(v) {
			return nil, false
		}
		return v, true
	}
}

func coerceString(_ *coercion, v any) (any, bool) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, false
	}
	return s, true
}

// notNull rejects a null value before conversion; cast maps nil to the
// zero value of the target type.
func notNull(next coercer) coercer {
	return func(c *coercion, v any) (any, bool) {
		if v == nil {
			return nil, false
		}
		return next(c, v)
	}
}

func coerceInt(_ *coercion, v any) (any, bool) {
	switch n := v.(type) {
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 0)
		if err != nil {
			return nil, false
		}
		return int(i), true
	case float64:
		return floatToInt(n)
	case float32:
		return floatToInt(float64(n))
	case uint:
		if uint64(n) > math.MaxInt {
			return nil, false
		}
	case uint64:
		if n > math.MaxInt {
			return nil, false
		}
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return nil, false
	}
	return i, true
}

// floatToInt truncates toward zero like int(). Values outside the int range
// fail instead of wrapping.
func floatToInt(f float64) (any, bool) {
	if math.IsNaN(f) || f < math.MinInt || f >= -math.MinInt {
		return nil, false
	}
	return int(f), true
}

// coerceFloat rejects NaN and infinities, which have no JSON encoding.
func coerceFloat(_ *coercion, v any) (any, bool) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

func coerceSigned(sign int) coercer {
	return func(c *coercion, v any) (any, bool) {
		out, ok := coerceFloat(c, v)
		if !ok {
			return nil, false
		}
		f := out.(float64)
		if (sign > 0 && f > 0) || (sign < 0 && f < 0) {
			return f, true
		}
		return nil, false
	}
}

func coerceBool(_ *coercion, v any) (any, bool) {
	switch v {
	case "true", "True", "TRUE", true:
		return true, true
	case "false", "False", "FALSE", false:
		return false, true
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, false
	}
	return b, true
}

func coerceList(c *coercion, v any) (any, bool) {
	if s, ok := text(v); ok {
		parsed, ok := c.decodeJSON(s)
		if !ok {
			return nil, false
		}
		list, ok := parsed.([]any)
		return list, ok
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return v, true
	}
	return nil, false
}

func coerceDict(c *coercion, v any) (any, bool) {
	if s, ok := text(v); ok {
		parsed, ok := c.decodeJSON(s)
		if !ok {
			return nil, false
		}
		m, ok := parsed.(map[string]any)
		return m, ok
	}
	if reflect.ValueOf(v).Kind() == reflect.Map {
		return v, true
	}
	return nil, false
}

// coerceJSON passes structured values through and decodes text.
func coerceJSON(c *coercion, v any) (any, bool) {
	if s, ok := text(v); ok {
		return c.decodeJSON(s)
	}
	return v, true
}

func coerceTime(dateOnly bool) coercer {
	return func(c *coercion, v any) (any, bool) {
		var t time.Time
		switch raw := v.(type) {
		case time.Time:
			t = raw
		case *time.Time:
			if raw == nil {
				return nil, false
			}
			t = *raw
		default:
			s, ok := text(v)
			if !ok || len(s) > c.cfg.MaxTextLength {
				return nil, false
			}
			parsed, err := time.Parse(c.timeLayout(dateOnly), strings.TrimSpace(s))
			if err != nil {
				return nil, false
			}
			t = parsed
		}
		if dateOnly {
			y, m, d := t.Date()
			t = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		}
		return t, true
	}
}

func coerceUUID(_ *coercion, v any) (any, bool) {
	switch raw := v.(type) {
	case uuid.UUID:
		return raw, true
	case string:
		if len(raw) > MaxPredicateInput {
			return nil, false
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, false
		}
		return id, true
	}
	return nil, false
}

func coerceObjectID(_ *coercion, v any) (any, bool) {
	switch raw := v.(type) {
	case bson.ObjectID:
		return raw, true
	case string:
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return nil, false
		}
		return id, true
	}
	return nil, false
}

// timeLayout resolves the layout: session "format" value, then the field's
// own format, then the configured default.
func (c *coercion) timeLayout(dateOnly bool) string {
	if f, ok := c.data[FormatKey].(string); ok && f != "" {
		return f
	}
	if c.layout != "" {
		return c.layout
	}
	if dateOnly {
		return c.cfg.DateLayout
	}
	return c.cfg.DateTimeLayout
}

func (c *coercion) decodeJSON(s string) (any, bool) {
	if len(s) > c.cfg.MaxTextLength {
		return nil, false
	}
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, false
	}
	return out, true
}

func text(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case json.RawMessage:
		return string(s), true
	}
	return "", false
}
