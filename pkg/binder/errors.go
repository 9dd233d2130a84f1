package binder

import "errors"

var (
	ErrFailedToParseForm = errors.New("failed to parse form data")
	ErrInvalidTarget     = errors.New("binding target must be a non-nil pointer to struct")
)
