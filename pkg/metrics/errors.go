package metrics

import "errors"

// ErrRegister wraps a collector registration failure, typically a duplicate.
var ErrRegister = errors.New("failed to register metrics collector")
