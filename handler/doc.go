// Package handler provides typed HTTP handlers that render JSON.
//
// A HandlerFunc receives a Context and a request value already bound from the
// HTTP request, and returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	type addRequest struct {
//		Name string `form:"name"`
//	}
//
//	add := func(ctx handler.Context, req addRequest) handler.Response {
//		if req.Name == "" {
//			return handler.JSONError(handler.ErrBadRequest)
//		}
//		return handler.JSON(result{OK: true})
//	}
//
//	r.Post("/names", handler.Wrap(add,
//		handler.WithBinders[handler.Context, addRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, addRequest](handler.NewErrorHandler(log)),
//	))
//
// Binding and rendering failures go to the ErrorHandler; NewErrorHandler logs
// them and writes a {"error": "..."} body with the status carried by an
// HTTPError, or 500 otherwise.
package handler
