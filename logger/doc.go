// Package logger provides structured logging for querykit
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("query")
//	log.Info("collect finished", logger.Fields("count", 42))
package logger
