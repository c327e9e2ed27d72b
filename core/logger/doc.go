// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so every log line of a request can be correlated, including across the
// frontend -> backend proxy hop (the RayID travels in the X-Ray-ID header).
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	app.Use(rayid.New(), logger.Requests(log))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
