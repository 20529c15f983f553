package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query extracts the URL query string. Unlike r.URL.Query it reports
// malformed escapes instead of silently dropping them.
//
//	GET /search?q=go&tag=web&tag=api
//	// {"q": "go", "tag": []string{"web", "api"}}
func Query(r *http.Request) (map[string]any, error) {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
	}
	return Values(values), nil
}
