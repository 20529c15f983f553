// Package logger builds the *slog.Logger used across the validation packages.
//
// New takes functional options for format, level, output, static attributes
// and context extractors. The returned logger wraps the concrete slog handler
// in a decorator that pulls request-scoped attributes (such as the chi request
// id) out of the context on every record.
//
// Attribute helpers in attr.go keep key names consistent:
//
//	log := logger.New(logger.WithFormat(logger.FormatText), logger.WithRequestID())
//	log.InfoContext(ctx, "request rejected",
//	    logger.Component("params"),
//	    logger.Field("email"),
//	    logger.Count(len(errs)),
//	)
//
// Error and Errors return an empty attribute for nil errors, which slog drops,
// so callers do not need a nil check.
package logger
