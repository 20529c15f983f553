package validator

import (
	"fmt"
	"strings"
)

// VType is the closed set of target types a field can be coerced into.
type VType uint8

const (
	// TypeNone leaves the raw value untouched.
	TypeNone VType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBoolean
	TypeList
	TypeDict
	TypeEmail
	TypeURL
	TypeJSON
	TypeMobilePhone
	TypePhone
	TypeMongoID
	TypeIPV4
	TypeIPV6
	TypeDateTime
	TypeDate
	TypePositive
	TypeNegative
	TypeUUID
	TypeObjectID

	typeSentinel
)

var vtypeNames = [...]string{
	TypeNone:        "none",
	TypeString:      "string",
	TypeInt:         "int",
	TypeFloat:       "float",
	TypeBoolean:     "boolean",
	TypeList:        "list",
	TypeDict:        "dict",
	TypeEmail:       "email",
	TypeURL:         "url",
	TypeJSON:        "json",
	TypeMobilePhone: "mobilephone",
	TypePhone:       "phone",
	TypeMongoID:     "mongoid",
	TypeIPV4:        "ipv4",
	TypeIPV6:        "ipv6",
	TypeDateTime:    "datetime",
	TypeDate:        "date",
	TypePositive:    "positive",
	TypeNegative:    "negative",
	TypeUUID:        "uuid",
	TypeObjectID:    "objectid",
}

var vtypeDescriptions = [...]string{
	TypeNone:        "value",
	TypeString:      "string",
	TypeInt:         "integer",
	TypeFloat:       "number",
	TypeBoolean:     "boolean",
	TypeList:        "list",
	TypeDict:        "object",
	TypeEmail:       "email address",
	TypeURL:         "URL",
	TypeJSON:        "JSON value",
	TypeMobilePhone: "mobile phone number",
	TypePhone:       "phone number",
	TypeMongoID:     "Mongo id",
	TypeIPV4:        "IPv4 address",
	TypeIPV6:        "IPv6 address",
	TypeDateTime:    "date and time",
	TypeDate:        "date",
	TypePositive:    "positive number",
	TypeNegative:    "negative number",
	TypeUUID:        "UUID",
	TypeObjectID:    "object id",
}

// Valid reports whether t is one of the declared tags.
func (t VType) Valid() bool {
	return t < typeSentinel
}

func (t VType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("vtype(%d)", uint8(t))
	}
	return vtypeNames[t]
}

// Description is the human wording used in coercion error messages.
func (t VType) Description() string {
	if !t.Valid() {
		return t.String()
	}
	return vtypeDescriptions[t]
}

// ParseVType resolves a type name case-insensitively. "bool", "integer",
// "object" and "array" are accepted as aliases.
func ParseVType(name string) (VType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "bool":
		return TypeBoolean, nil
	case "integer":
		return TypeInt, nil
	case "object", "map":
		return TypeDict, nil
	case "array":
		return TypeList, nil
	}
	for i, s := range vtypeNames {
		if s == n {
			return VType(i), nil
		}
	}
	return TypeNone, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// UnmarshalText lets VType be decoded from YAML, JSON and env values.
func (t *VType) UnmarshalText(text []byte) error {
	v, err := ParseVType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t VType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	return []byte(t.String()), nil
}
