package handler

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/namesvc/pkg/logger"
)

// WithLogging logs every invocation of the wrapped handler at debug level
// with its name and duration.
func WithLogging[C Context, R any](log *slog.Logger, name string) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "handler completed",
				logger.Handler(name),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
