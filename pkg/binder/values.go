package binder

import (
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
)

// Values flattens url.Values into a raw input map. A key with one value maps
// to a string, a key with several values maps to []string and a key without
// values is dropped.
func Values(v url.Values) map[string]any {
	out := make(map[string]any, len(v))
	for key, vals := range v {
		switch len(vals) {
		case 0:
		case 1:
			out[key] = vals[0]
		default:
			out[key] = append([]string(nil), vals...)
		}
	}
	return out
}

// files flattens uploaded file headers the same way Values flattens fields.
func files(src map[string][]*multipart.FileHeader, dst map[string]any) {
	for key, headers := range src {
		for _, h := range headers {
			h.Filename = sanitizeFilename(h.Filename)
		}
		switch len(headers) {
		case 0:
		case 1:
			dst[key] = headers[0]
		default:
			dst[key] = append([]*multipart.FileHeader(nil), headers...)
		}
	}
}

// sanitizeFilename strips directory components and null bytes from an
// uploaded file name.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}

// mediaType returns the content type without parameters.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
