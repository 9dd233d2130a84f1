// Package binder fills tagged request structs from HTTP requests.
//
// Form reads the `form` struct tag and takes values from the query string
// and, for POST/PUT/PATCH, from url-encoded or multipart bodies:
//
//	type addRequest struct {
//		Name string `form:"name"`
//	}
//
// When a parameter appears in both places the query value is the one bound to
// scalar fields; slice fields receive query values followed by body values.
//
// Fields without a matching parameter keep their zero value, which lets a
// handler treat a missing parameter the same as an empty one. Pointer fields
// stay nil when the parameter is absent.
package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// DefaultMaxMemory bounds the in-memory part of a parsed multipart body.
const DefaultMaxMemory = 10 << 20

// Form returns a binder for query and form parameters. Query values take
// precedence over body values with the same name.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := parseForm(r); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return bindToStruct(v, "form", queryFirst(r.URL.Query(), r.PostForm))
	}
}

// queryFirst merges query and body values, query values first.
func queryFirst(query, body url.Values) url.Values {
	merged := make(url.Values, len(query)+len(body))
	for k, vs := range query {
		merged[k] = append(merged[k], vs...)
	}
	for k, vs := range body {
		merged[k] = append(merged[k], vs...)
	}
	return merged
}

func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(DefaultMaxMemory)
	}
	return r.ParseForm()
}
