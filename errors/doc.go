// Package errors provides the structured error type used across batchpipe.
// Errors carry a machine-readable code and the process exit code the CLI
// should terminate with when the error reaches main.
package errors
