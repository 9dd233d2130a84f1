package names

import "errors"

var (
	// ErrNotFound is returned when a name is requested from an empty store.
	ErrNotFound = errors.New("no names available")
	// ErrInvalidInput is returned when a submitted name is empty after trimming.
	ErrInvalidInput = errors.New("invalid name")
	// ErrInvalidConfig is returned by Config.HandlerOptions for unusable settings.
	ErrInvalidConfig = errors.New("invalid names configuration")
)
