package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/namesvc/pkg/binder"
	"github.com/dmitrymomot/namesvc/pkg/environment"
	"github.com/dmitrymomot/namesvc/pkg/logger"
	"github.com/dmitrymomot/namesvc/pkg/requestid"
)

// classifyError maps err to the HTTPError sent to the client. Unclassified
// errors become a 500; in development its message is err itself.
func classifyError(ctx context.Context, err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, binder.ErrFailedToParseForm):
		return NewHTTPError(http.StatusBadRequest, "invalid form data")
	case environment.IsDevelopment(ctx):
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return ErrInternalServerError
	}
}

func logLevel(status int) slog.Level {
	if status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler returns an ErrorHandler that logs the failure with the
// request id, method and path, then writes a JSON error body. Client errors
// are logged at warn level, everything else at error level. Requests carrying
// environment.Development expose internal error messages in the body.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		httpErr := classifyError(r.Context(), err)

		log.LogAttrs(r.Context(), logLevel(httpErr.Code), "request error",
			logger.Component("error_handler"),
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", httpErr.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if renderErr := JSONError(httpErr).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("error_handler"),
				logger.Error(renderErr),
			)
		}
	}
}

// NotFound renders unmatched routes as a JSON 404.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = JSONError(ErrNotFound).Render(w, r)
	}
}

// MethodNotAllowed renders a JSON 405 for known paths hit with an
// unsupported method.
func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = JSONError(ErrMethodNotAllowed).Render(w, r)
	}
}
