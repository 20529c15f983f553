package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form extracts fields from an application/x-www-form-urlencoded or
// multipart/form-data body. Uploaded files are included as
// *multipart.FileHeader (or a slice of them for repeated keys) with their
// names reduced to a bare file name. Query string values are not included;
// use Query or Request for those.
func Form(r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	switch mt := mediaType(contentType); mt {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return Values(r.PostForm), nil

	case "multipart/form-data":
		_, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
		}
		if params["boundary"] == "" {
			return nil, fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
		}
		// Request size limits belong to the server or a middleware.
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		out := make(map[string]any)
		if r.MultipartForm != nil {
			out = Values(r.MultipartForm.Value)
			files(r.MultipartForm.File, out)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
	}
}
