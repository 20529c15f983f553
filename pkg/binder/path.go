package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path extracts the URL parameters chi matched for the current route.
// Requests that did not go through a chi router yield an empty map.
//
//	r.Get("/users/{id}", handler)
//	// GET /users/42 -> {"id": "42"}
func Path(r *http.Request) map[string]any {
	out := make(map[string]any)
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return out
	}
	params := rctx.URLParams
	for i, key := range params.Keys {
		if key == "" || key == "*" || i >= len(params.Values) {
			continue
		}
		out[key] = params.Values[i]
	}
	return out
}
