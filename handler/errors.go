package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse is reported when a handler returns a nil Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with the status code and client-facing message to
// respond with.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with a custom message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "not_found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Message: "method_not_allowed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "internal_server_error"}
)
