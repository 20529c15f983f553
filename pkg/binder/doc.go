// Package binder extracts HTTP request parameters into raw input maps ready
// for validation.
//
// Every extractor returns map[string]any. Single-valued query and form keys
// map to a string, repeated keys to []string, uploaded files to
// *multipart.FileHeader and JSON bodies keep their decoded shape.
//
//	raw, err := binder.Request(r)
//	if err != nil {
//	    http.Error(w, err.Error(), http.StatusBadRequest)
//	    return
//	}
//	session, err := signup.Validate(raw)
//
// # Available Extractors
//
//   - Query: URL query parameters
//   - Form: urlencoded and multipart bodies including file uploads
//   - JSON: a single JSON object body, limited to DefaultMaxJSONSize
//   - Path: chi route parameters
//   - Request: all of the above merged, path parameters winning
//
// # Error Handling
//
//   - ErrUnsupportedMediaType: Content type doesn't match expected type
//   - ErrFailedToParseJSON: Failed to parse JSON request body
//   - ErrFailedToParseForm: Failed to parse form data
//   - ErrFailedToParseQuery: Failed to parse query parameters
//   - ErrMissingContentType: Missing Content-Type header
package binder
