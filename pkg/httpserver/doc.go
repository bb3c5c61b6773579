// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener, serves until the context ends or the process
// receives SIGINT/SIGTERM, then drains in-flight requests for at most the
// shutdown timeout:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler serve the health endpoints. Readiness
// takes named checks, for example a Redis ping.
package httpserver
