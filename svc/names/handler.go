package names

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/namesvc/handler"
	"github.com/dmitrymomot/namesvc/pkg/binder"
	"github.com/dmitrymomot/namesvc/pkg/logger"
)

// RoutePath is where Register mounts both operations.
const RoutePath = "/api/random-name"

const (
	msgNoNames   = "No names available"
	msgAdded     = "Name added successfully"
	msgEmptyName = "Name cannot be empty"
)

type nameResponse struct {
	Name string `json:"name"`
}

type addNameRequest struct {
	Name string `form:"name"`
}

type addNameResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handler maps HTTP requests to a Service.
type Handler struct {
	svc           *Service
	log           *slog.Logger
	invalidStatus int
}

type HandlerOption func(*Handler)

func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithInvalidInputStatus sets the status of a POST rejected for a blank name.
// It panics on codes outside 200-599.
func WithInvalidInputStatus(code int) HandlerOption {
	if !validStatus(code) {
		panic(fmt.Sprintf("names: invalid status code %d for rejected names", code))
	}
	return func(h *Handler) { h.invalidStatus = code }
}

func NewHandler(svc *Service, opts ...HandlerOption) *Handler {
	if svc == nil {
		panic("names: nil service")
	}
	h := &Handler{
		svc:           svc,
		log:           logger.NewNop(),
		invalidStatus: http.StatusOK,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts GET and POST on RoutePath.
func (h *Handler) Register(r chi.Router) {
	errHandler := handler.NewErrorHandler(h.log)

	r.Get(RoutePath, handler.Wrap(h.randomName,
		handler.WithErrorHandler[handler.Context, struct{}](errHandler),
		handler.WithDecorators(handler.WithLogging[handler.Context, struct{}](h.log, "random_name")),
	))
	r.Post(RoutePath, handler.Wrap(h.addName,
		handler.WithBinders[handler.Context, addNameRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, addNameRequest](errHandler),
		handler.WithDecorators(handler.WithLogging[handler.Context, addNameRequest](h.log, "add_name")),
	))
}

func (h *Handler) randomName(ctx handler.Context, _ struct{}) handler.Response {
	name, err := h.svc.RandomName(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return handler.JSONError(handler.NewHTTPError(http.StatusNotFound, msgNoNames))
		}
		return handler.JSONError(err)
	}
	return handler.JSON(nameResponse{Name: name})
}

func (h *Handler) addName(ctx handler.Context, req addNameRequest) handler.Response {
	if _, err := h.svc.AddName(ctx, req.Name); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return handler.JSON(
				addNameResponse{Success: false, Message: msgEmptyName},
				handler.WithJSONStatus(h.invalidStatus),
			)
		}
		return handler.JSONError(err)
	}
	return handler.JSON(addNameResponse{Success: true, Message: msgAdded})
}
