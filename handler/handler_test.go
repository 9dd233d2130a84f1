package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namesvc/handler"
	"github.com/dmitrymomot/namesvc/pkg/binder"
)

type greetRequest struct {
	Name string `form:"name"`
}

type greeting struct {
	Greeting string `json:"greeting"`
}

func greet(_ handler.Context, req greetRequest) handler.Response {
	if req.Name == "" {
		return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, "name required"))
	}
	return handler.JSON(greeting{Greeting: "hello " + req.Name})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](binder.Form()))

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=Grace", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, handler.ContentTypeJSON, rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"greeting":"hello Grace"}`, rec.Body.String())
	})

	t.Run("handler error response", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"name required"}`, rec.Body.String())
	})

	t.Run("bind error goes to error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(greet,
			handler.WithBinders[handler.Context, greetRequest](func(*http.Request, any) error {
				return binder.ErrFailedToParseForm
			}),
			handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=x", nil))

		assert.ErrorIs(t, got, binder.ErrFailedToParseForm)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil })
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal_server_error"}`, rec.Body.String())
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		trace := func(name string) handler.Decorator[handler.Context, struct{}] {
			return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
				return func(ctx handler.Context, req struct{}) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(
			func(handler.Context, struct{}) handler.Response {
				order = append(order, "handler")
				return handler.JSON(nil)
			},
			handler.WithDecorators(trace("outer"), trace("inner")),
		)
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	})
}

type appContext struct {
	handler.Context
	tenant string
}

func TestWrap_CustomContext(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		func(ctx *appContext, _ struct{}) handler.Response {
			return handler.JSON(map[string]string{"tenant": ctx.tenant})
		},
		handler.WithContextFactory[*appContext, struct{}](func(w http.ResponseWriter, r *http.Request) *appContext {
			return &appContext{Context: handler.NewContext(w, r), tenant: r.Header.Get("X-Tenant")}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Tenant", "acme")
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.JSONEq(t, `{"tenant":"acme"}`, rec.Body.String())
}

func TestWrap_CustomContextWithoutFactoryPanics(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(*appContext, struct{}) handler.Response { return handler.JSON(nil) })
	assert.Panics(t, func() {
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := handler.NewContext(rec, req)

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	require.NoError(t, ctx.Err())
	_, ok := ctx.Deadline()
	assert.False(t, ok)
	assert.Nil(t, ctx.Value("missing"))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("default status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.JSON(map[string]string{"name": "Bob Smith"}).
			Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=UTF-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "{\"name\":\"Bob Smith\"}\n", rec.Body.String())
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.JSON(greeting{Greeting: "hi"}, handler.WithJSONStatus(http.StatusCreated)).
			Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"greeting":"hi"}`, rec.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		opts   []handler.JSONOption
		status int
		body   string
	}{
		{"http error", handler.NewHTTPError(http.StatusNotFound, "No names available"), nil, 404, `{"error":"No names available"}`},
		{"wrapped http error", errors.Join(errors.New("ctx"), handler.ErrBadRequest), nil, 400, `{"error":"bad_request"}`},
		{"plain error hides details", errors.New("db password leaked"), nil, 500, `{"error":"internal_server_error"}`},
		{"status override", handler.ErrNotFound, []handler.JSONOption{handler.WithJSONStatus(http.StatusGone)}, 410, `{"error":"not_found"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err, tt.opts...).
				Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, handler.ContentTypeJSON, rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := handler.NewHTTPError(http.StatusConflict, "duplicate")
	assert.Equal(t, "duplicate", err.Error())
	assert.Equal(t, http.StatusConflict, err.Code)
}
