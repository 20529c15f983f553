package params

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying the validated parameters.
func WithContext(ctx context.Context, data map[string]any) context.Context {
	return context.WithValue(ctx, contextKey{}, data)
}

// FromContext returns the parameters stored by Middleware, or nil when the
// request did not pass through it.
func FromContext(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	data, _ := ctx.Value(contextKey{}).(map[string]any)
	return data
}

// Get returns one validated parameter converted to T. It reports false when
// the key is absent or holds a value of another type.
func Get[T any](ctx context.Context, key string) (T, bool) {
	v, ok := FromContext(ctx)[key].(T)
	return v, ok
}
