// Package logging provides centralized structured logging configuration and utilities for dungeongen.
//
// This package wraps logrus to provide consistent logging across the generation pipeline and
// its command-line tools. It supports environment-based configuration, multiple formatters, and
// contextual logging.
//
// # Configuration
//
// The logger can be configured via environment variables:
//   - LOG_LEVEL: Sets the minimum log level (debug, info, warn, error, fatal). Default: info
//   - LOG_FORMAT: Sets the output format (json, text). Default: text
//
// # Usage
//
// Initialize the logger at application startup:
//
//	logger := logging.NewLogger(logging.Config{
//	    Level:      logging.InfoLevel,
//	    Format:     logging.TextFormat,
//	    AddCaller:  true,
//	})
//
// Use structured fields for context:
//
//	logging.GeneratorLogger(logger, "bsp", seed, attempt).Info("map accepted")
//
// # Performance
//
// Avoid logging above Info level inside the retry loop; use conditional debug logging for the
// per-cell detail the wall orientation filter would otherwise produce:
//
//	if logger.GetLevel() >= logrus.DebugLevel {
//	    logger.WithFields(expensiveFields()).Debug("wall neighbourhood")
//	}
package logging
