package binder

import (
	"fmt"
	"maps"
	"net/http"
)

// Request merges every parameter source of r into one raw input map. Query
// values are read first, then the body chosen by Content-Type, then chi path
// parameters, each source overriding keys of the previous one.
//
// A request without a body, or without a Content-Type on a body, contributes
// no body values. Any other content type is rejected with
// ErrUnsupportedMediaType.
func Request(r *http.Request) (map[string]any, error) {
	out, err := Query(r)
	if err != nil {
		return nil, err
	}

	if hasBody(r) {
		var body map[string]any
		switch mt := mediaType(r.Header.Get("Content-Type")); mt {
		case "":
		case "application/json":
			body, err = JSON(r)
		case "application/x-www-form-urlencoded", "multipart/form-data":
			body, err = Form(r)
		default:
			err = fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
		}
		if err != nil {
			return nil, err
		}
		maps.Copy(out, body)
	}

	maps.Copy(out, Path(r))
	return out, nil
}

func hasBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	return r.ContentLength != 0
}
