package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/namesvc/handler"
	"github.com/dmitrymomot/namesvc/pkg/environment"
	"github.com/dmitrymomot/namesvc/pkg/httpserver"
	"github.com/dmitrymomot/namesvc/pkg/metrics"
	"github.com/dmitrymomot/namesvc/pkg/requestid"
	"github.com/dmitrymomot/namesvc/svc/names"
)

type routerDeps struct {
	env   environment.Environment
	names *names.Handler
	// registry is nil when metrics are disabled.
	registry *prometheus.Registry
}

func newRouter(deps routerDeps) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		requestid.Middleware,
		environment.Middleware(deps.env),
	)
	if deps.registry != nil {
		mw, err := metrics.HTTPMiddleware(deps.registry)
		if err != nil {
			return nil, err
		}
		r.Use(mw)
	}

	r.NotFound(handler.NotFound())
	r.MethodNotAllowed(handler.MethodNotAllowed())

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler())
	if deps.registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.registry))
	}

	deps.names.Register(r)
	return r, nil
}
