// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and an optional secondary log file.
//
// # Run Correlation
//
// Every reconciliation run is tagged with a unique run_id via WithRunID,
// ensuring that all log lines belonging to one run can be correlated even
// when output from several runs lands in the same log file.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//   - File: optional additional output path
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("update started")
package logger
