// Command namesvc serves a random name from an in-memory list and accepts
// new names over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/namesvc/pkg/config"
	"github.com/dmitrymomot/namesvc/pkg/environment"
	"github.com/dmitrymomot/namesvc/pkg/httpserver"
	"github.com/dmitrymomot/namesvc/pkg/logger"
	"github.com/dmitrymomot/namesvc/pkg/metrics"
	"github.com/dmitrymomot/namesvc/pkg/requestid"
	"github.com/dmitrymomot/namesvc/svc/names"
)

type appConfig struct {
	Name           string `env:"APP_NAME" envDefault:"namesvc"`
	Env            string `env:"APP_ENV" envDefault:"development"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("namesvc failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg    appConfig
		serverCfg httpserver.Config
		namesCfg  names.Config
	)
	if err := config.Load(&appCfg); err != nil {
		return err
	}
	if err := config.Load(&serverCfg); err != nil {
		return err
	}
	if err := config.Load(&namesCfg); err != nil {
		return err
	}

	env := environment.Parse(appCfg.Env)
	log := logger.New(
		logger.WithEnvironment(string(env), appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	store := names.NewStore()
	svcOpts := []names.ServiceOption{names.WithLogger(log)}

	var registry *prometheus.Registry
	if appCfg.MetricsEnabled {
		registry = metrics.NewRegistry()
		collector, err := metrics.NewNamesCollector(registry)
		if err != nil {
			return err
		}
		collector.StoreSize(store.Len())
		svcOpts = append(svcOpts, names.WithRecorder(collector))
	}

	handlerOpts, err := namesCfg.HandlerOptions()
	if err != nil {
		return err
	}
	svc := names.NewService(store, svcOpts...)
	h := names.NewHandler(svc, append(handlerOpts, names.WithHandlerLogger(log))...)

	router, err := newRouter(routerDeps{
		env:      env,
		names:    h,
		registry: registry,
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting",
		logger.Count(store.Len()),
		slog.Bool("metrics", registry != nil),
	)
	return httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log)).Run(ctx, router)
}
