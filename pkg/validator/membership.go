package validator

import "reflect"

// contains reports whether v deep-equals one of allowed. Values are compared
// with their Go types, so int 1 and float64 1 are different members.
func contains(allowed []any, v any) bool {
	for _, a := range allowed {
		if reflect.DeepEqual(a, v) {
			return true
		}
	}
	return false
}
