// Package schema groups field specs into an ordered, reusable list and loads
// such lists from YAML or JSON documents.
//
//	signup := schema.MustNew("signup",
//	    schema.F("email", validator.WithType(validator.TypeEmail)),
//	    schema.F("age", validator.WithType(validator.TypeInt), validator.In(18, 19, 20)),
//	    schema.F("role", validator.WithDefault("member")),
//	)
//	session, err := signup.Validate(raw)
//
// Documents use one entry per field with the keys key, type, default, must,
// in, test and format. "test" takes predicate expressions understood by
// validator.ParsePredicate, plus names registered with WithPredicate. A field
// with only a key is a required pass-through.
package schema
