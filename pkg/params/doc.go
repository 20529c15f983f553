// Package params validates HTTP request parameters with a schema before the
// handler runs.
//
// Middleware extracts the raw parameters (binder.Request by default), runs
// them through a schema.Schema and either rejects the request or stores the
// normalized values in its context:
//
//	signup := schema.MustNew("signup",
//	    schema.F("email", validator.WithType(validator.TypeEmail)),
//	    schema.F("age", validator.WithType(validator.TypeInt), validator.Optional()),
//	)
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID)
//	r.With(params.Middleware(signup, params.WithLogger(log))).
//	    Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//	        data := params.FromContext(r.Context())
//	        ...
//	    })
//
// A failed validation answers 422 Unprocessable Entity:
//
//	{
//	  "error": "validation_failed",
//	  "details": {"email": ["missing parameter"]},
//	  "messages": ["email: missing parameter"]
//	}
package params
