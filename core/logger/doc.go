// Package logger provides a structured logging facility based on Zap.
//
// The CLI logs progress in console format by default; the serve command usually
// runs with JSON encoding.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a
// Fiber context and attaches it to the log entry, so all logs of one request
// can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Getting questions...")
package logger
