package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ContentTypeJSON is set on every JSON response.
const ContentTypeJSON = "application/json; charset=UTF-8"

// ErrorBody is the payload of JSON error responses.
type ErrorBody struct {
	Error string `json:"error"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// JSON renders v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as {"error": "..."}. An HTTPError supplies the status
// and message; any other error becomes a 500 with a generic message so that
// internal details are not leaked.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusInternalServerError,
		body:   ErrorBody{Error: ErrInternalServerError.Message},
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		r.status = httpErr.Code
		r.body = ErrorBody{Error: httpErr.Message}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}
