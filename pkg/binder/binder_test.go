package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqvalidator/pkg/binder"
)

func TestValues(t *testing.T) {
	t.Parallel()

	got := binder.Values(url.Values{
		"one":   {"a"},
		"many":  {"b", "c"},
		"empty": {},
	})

	assert.Equal(t, map[string]any{"one": "a", "many": []string{"b", "c"}}, got)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("single and repeated keys", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?q=go&tag=web&tag=api", nil)

		got, err := binder.Query(req)
		require.NoError(t, err)
		assert.Equal(t, "go", got["q"])
		assert.Equal(t, []string{"web", "api"}, got["tag"])
	})

	t.Run("malformed escape", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		req.URL.RawQuery = "q=%zz"

		_, err := binder.Query(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})

	t.Run("no query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search", nil)

		got, err := binder.Query(req)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	newRequest := func(body, contentType string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return req
	}

	t.Run("object body", func(t *testing.T) {
		got, err := binder.JSON(newRequest(`{"name":"jo","age":30,"tags":["a"]}`, "application/json; charset=utf-8"))
		require.NoError(t, err)
		assert.Equal(t, "jo", got["name"])
		assert.Equal(t, float64(30), got["age"])
		assert.Equal(t, []any{"a"}, got["tags"])
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong content type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrFailedToParseJSON},
		{"array body", `[1,2]`, "application/json", binder.ErrFailedToParseJSON},
		{"null body", `null`, "application/json", binder.ErrFailedToParseJSON},
		{"malformed", `{"name":`, "application/json", binder.ErrFailedToParseJSON},
		{"trailing data", `{"a":1}{"b":2}`, "application/json", binder.ErrFailedToParseJSON},
		{"too large", `{"a":"` + strings.Repeat("x", binder.DefaultMaxJSONSize) + `"}`, "application/json", binder.ErrFailedToParseJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := binder.JSON(newRequest(tt.body, tt.contentType))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		form := url.Values{"name": {"John"}, "tags": {"a", "b"}}
		req := httptest.NewRequest(http.MethodPost, "/test?page=2", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		got, err := binder.Form(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "John", "tags": []string{"a", "b"}}, got)
	})

	t.Run("multipart with files", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("title", "report"))
		fw, err := w.CreateFormFile("doc", "../../etc/passwd")
		require.NoError(t, err)
		_, err = fw.Write([]byte("content"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())

		got, err := binder.Form(req)
		require.NoError(t, err)
		assert.Equal(t, "report", got["title"])

		fh, ok := got["doc"].(*multipart.FileHeader)
		require.True(t, ok)
		assert.Equal(t, "passwd", fh.Filename)
	})

	t.Run("multipart without boundary", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")

		_, err := binder.Form(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("missing content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("a=b"))

		_, err := binder.Form(req)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("json content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Form(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	t.Run("chi route parameters", func(t *testing.T) {
		var got map[string]any
		r := chi.NewRouter()
		r.Get("/users/{id}/posts/{slug}", func(w http.ResponseWriter, req *http.Request) {
			got = binder.Path(req)
		})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42/posts/hello", nil))
		assert.Equal(t, map[string]any{"id": "42", "slug": "hello"}, got)
	})

	t.Run("outside a router", func(t *testing.T) {
		got := binder.Path(httptest.NewRequest(http.MethodGet, "/users/42", nil))
		assert.Empty(t, got)
	})
}

func TestRequest(t *testing.T) {
	t.Parallel()

	route := func(t *testing.T, req *http.Request) (map[string]any, error) {
		t.Helper()
		var (
			got map[string]any
			err error
		)
		r := chi.NewRouter()
		r.HandleFunc("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			got, err = binder.Request(req)
		})
		r.ServeHTTP(httptest.NewRecorder(), req)
		return got, err
	}

	t.Run("merges query json body and path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/users/42?expand=true&name=query",
			strings.NewReader(`{"name":"body","id":"spoofed"}`))
		req.Header.Set("Content-Type", "application/json")

		got, err := route(t, req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"expand": "true", "name": "body", "id": "42"}, got)
	})

	t.Run("form body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users/7", strings.NewReader("role=admin"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		got, err := route(t, req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"role": "admin", "id": "7"}, got)
	})

	t.Run("get without body", func(t *testing.T) {
		got, err := route(t, httptest.NewRequest(http.MethodGet, "/users/7?page=1", nil))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"page": "1", "id": "7"}, got)
	})

	t.Run("unsupported body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users/7", strings.NewReader("<x/>"))
		req.Header.Set("Content-Type", "application/xml")

		_, err := route(t, req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("broken json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users/7", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")

		_, err := route(t, req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}
