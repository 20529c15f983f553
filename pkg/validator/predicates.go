package validator

import (
	"encoding/json"
	"math"
	"net/netip"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/width"
)

// MaxPredicateInput bounds the length of text handed to the pattern matchers.
// Longer input is rejected without being matched.
const MaxPredicateInput = 2048

const ipv4Pattern = `\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`

var (
	emailRegex = regexp.MustCompile(`^[^._][\w._-]+@(?:[A-Za-z0-9]+\.)+[A-Za-z]+$`)

	// Mainland mobile numbers: 1, a carrier digit, nine more digits.
	mobileRegex = regexp.MustCompile(`^1[34578]\d{9}$`)

	// Landline: optional area code (0 + 2-3 digits, optional dash), a 7-8 digit
	// local number and an optional dash-separated extension.
	landlineRegex = regexp.MustCompile(`^(?:0\d{2,3}-?)?[2-9]\d{6,7}(?:-\d{1,6})?$`)

	urlRegex = regexp.MustCompile(`(?i)^(?:http|ftp)s?://` +
		`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)|` +
		`localhost|` +
		ipv4Pattern + `)` +
		`(?::\d+)?` +
		`(?:/?|[/?]\S+)$`)

	mongoIDRegex = regexp.MustCompile(`^[a-f0-9]{24}$`)

	ipv4Regex = regexp.MustCompile(`^` + ipv4Pattern + `$`)
)

// IsEmail reports whether v is a string shaped like local@domain.tld.
func IsEmail(v any) bool {
	s, ok := boundedText(v)
	return ok && emailRegex.MatchString(s)
}

// IsMobilePhone reports whether v is an 11 digit mobile number. Integers and
// integral JSON numbers are stringified first; full-width digits are accepted.
func IsMobilePhone(v any) bool {
	s, ok := numeral(v)
	return ok && mobileRegex.MatchString(s)
}

// IsPhone accepts a landline number or a mobile number.
func IsPhone(v any) bool {
	s, ok := numeral(v)
	return ok && (landlineRegex.MatchString(s) || mobileRegex.MatchString(s))
}

// IsURL reports whether v is an http, https, ftp or ftps URL.
func IsURL(v any) bool {
	s, ok := boundedText(v)
	return ok && urlRegex.MatchString(s)
}

// IsMongoID reports whether v is exactly 24 lowercase hex characters.
func IsMongoID(v any) bool {
	s, ok := boundedText(v)
	return ok && mongoIDRegex.MatchString(s)
}

// IsIPV4 matches four dot-separated groups of one to three digits. Octets are
// not bounded to 0-255, so "999.999.999.999" passes; use IsIPV4Strict for
// address semantics.
func IsIPV4(v any) bool {
	s, ok := boundedText(v)
	return ok && ipv4Regex.MatchString(s)
}

// IsIPV4Strict reports whether v is a dotted-quad IPv4 address with every
// octet in 0-255.
func IsIPV4Strict(v any) bool {
	s, ok := boundedText(v)
	if !ok {
		return false
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// IsIPV6 reports whether v is a textual IPv6 address, zones included.
func IsIPV6(v any) bool {
	s, ok := boundedText(v)
	if !ok || !strings.Contains(s, ":") {
		return false
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6()
}

// IsUUID reports whether v is a UUID in any form google/uuid accepts.
func IsUUID(v any) bool {
	s, ok := boundedText(v)
	return ok && uuid.Validate(s) == nil
}

var builtinPredicates = map[string]Predicate{
	"email":       IsEmail,
	"mobilephone": IsMobilePhone,
	"phone":       IsPhone,
	"url":         IsURL,
	"mongoid":     IsMongoID,
	"ipv4":        IsIPV4,
	"ipv4strict":  IsIPV4Strict,
	"ipv6":        IsIPV6,
	"uuid":        IsUUID,
}

// LookupPredicate returns the built-in predicate registered under name.
func LookupPredicate(name string) (Predicate, bool) {
	p, ok := builtinPredicates[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

func boundedText(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || len(s) > MaxPredicateInput {
		return "", false
	}
	return s, true
}

// numeral turns integer-like input into its decimal text form.
func numeral(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		if len(n) > MaxPredicateInput {
			return "", false
		}
		return width.Narrow.String(n), true
	case json.Number:
		return numeral(string(n))
	case float64:
		return integralFloat(n)
	case float32:
		return integralFloat(float64(n))
	case bool:
		return "", false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	}
	return "", false
}

func integralFloat(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
