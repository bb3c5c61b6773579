// Package logger builds the process-wide *slog.Logger.
//
// New assembles a handler chain from functional options: a text or JSON
// handler, static attributes, context extractors that inject request-scoped
// values (request id) on every call, and optional filters that drop noisy
// records before they reach the output.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "folio"),
//	    logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	    logger.WithFilter(logger.MessageContains("client disconnected")),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers such as Error, Component, Event and Duration keep key
// names consistent across packages. Error and Errors return an empty Attr
// for nil input, so callers can pass them without a nil check:
//
//	log.Info("operation finished", logger.Error(err))
package logger
