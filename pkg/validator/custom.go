package validator

// runTests evaluates every predicate against the raw value and returns one
// error per rejecting predicate, in declaration order.
func runTests(key string, tests []namedPredicate, raw any) []ValidationError {
	var failed []ValidationError
	for i, t := range tests {
		if !t.fn(raw) {
			failed = append(failed, customTestError(key, i, t.name))
		}
	}
	return failed
}
