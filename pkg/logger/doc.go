// Package logger builds *slog.Logger instances for the service.
//
// New assembles a text or JSON handler from functional options and wraps it in
// a LogHandlerDecorator that pulls request-scoped values (request id,
// environment) out of the context on every record. The attr helpers keep
// attribute keys identical across packages:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "namesvc"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "name added", logger.Component("names"), logger.Event("add"))
//
// Error and RequestID return an empty attribute for nil errors and empty ids,
// so they can be passed unconditionally.
package logger
