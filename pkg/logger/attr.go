package logger

import (
	"log/slog"
	"time"
)

// Error records a single error under the key "error".
// A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
// Empty ids are dropped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Duration records d under "duration" using its String form.
func Duration(d time.Duration) slog.Attr {
	return slog.String("duration", d.String())
}

// Count records a size or total under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
