// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then drains in-flight requests within the shutdown timeout.
// Listen failures are wrapped in ErrStart and drain failures in ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler back the /health probes.
package httpserver
