// Package logger provides structured logging for batchpipe using zerolog.
//
// It supports JSON, console, and plain output. The plain format renders one
// line per event as "[2006-01-02 15:04:05] message key=value", which is what
// the batchpipe CLI prints at every stage boundary.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "plain"
//	  time_format: "2006-01-02 15:04:05"
//
// # Usage
//
//	log := logger.New(&cfg.Logging, "batchpipe").WithComponent("runner")
//	log.Info("Extracted 20 records", logger.Fields("records", 20))
package logger
