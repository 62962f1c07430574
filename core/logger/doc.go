// Package logger provides a structured logging facility based on Zap.
//
// Operator-facing messages (listener bound, shutdown, fatal startup errors) go
// through this logger on stderr. The startup banner is written to stdout by the
// server package and is not a log line.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (default) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server listening", zap.String("addr", addr))
package logger
