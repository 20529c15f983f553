package params

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/reqvalidator/pkg/binder"
	"github.com/dmitrymomot/reqvalidator/pkg/logger"
	"github.com/dmitrymomot/reqvalidator/pkg/schema"
	"github.com/dmitrymomot/reqvalidator/pkg/validator"
)

// BindFunc extracts the raw parameter map from a request.
type BindFunc func(r *http.Request) (map[string]any, error)

type options struct {
	bind        BindFunc
	logger      *slog.Logger
	sessionOpts []validator.SessionOption
}

// Option configures Middleware.
type Option func(*options)

// WithBinder replaces binder.Request as the parameter source.
func WithBinder(fn BindFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.bind = fn
		}
	}
}

// WithLogger sets the logger for rejected requests. It is also handed to
// every validation session.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSessionOptions passes options to every validation session.
func WithSessionOptions(opts ...validator.SessionOption) Option {
	return func(o *options) {
		o.sessionOpts = append(o.sessionOpts, opts...)
	}
}

// Middleware validates request parameters against s before calling next.
//
// Requests whose parameters cannot be extracted get 400. A request carrying
// no parameters at all is resolved with Schema.ValidateEmpty, so a schema
// whose fields are all optional or defaulted accepts it and one with required
// fields reports them missing. Requests failing validation get 422 with every
// field error. A schema misconfiguration gets 500. Otherwise the normalized
// values are stored in the request context for FromContext.
//
//	r := chi.NewRouter()
//	r.With(params.Middleware(signup)).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//	    email, _ := params.Get[string](r.Context(), "email")
//	})
func Middleware(s *schema.Schema, opts ...Option) func(http.Handler) http.Handler {
	o := &options{
		bind:   binder.Request,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	sessionOpts := append([]validator.SessionOption{validator.WithLogger(o.logger)}, o.sessionOpts...)
	log := o.logger.With(logger.Component("params"), logger.Schema(s.Name()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			raw, err := o.bind(r)
			if err != nil {
				log.InfoContext(ctx, "failed to bind request parameters", logger.Error(err))
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: CodeBadRequest, Message: err.Error()})
				return
			}

			var session *validator.Session
			if len(raw) == 0 {
				session, err = s.ValidateEmpty(sessionOpts...)
			} else {
				session, err = s.Validate(raw, sessionOpts...)
			}
			if err != nil {
				log.ErrorContext(ctx, "schema misconfigured", logger.Error(err))
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: CodeInternal})
				return
			}

			if !session.Valid() {
				errs := session.Errors()
				log.InfoContext(ctx, "request parameters rejected",
					logger.Fields(errs.Fields()),
					logger.Count(len(errs)),
					logger.Duration(time.Since(start)),
				)
				writeJSON(w, http.StatusUnprocessableEntity, validationResponse(errs))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithContext(ctx, session.Data())))
		})
	}
}
