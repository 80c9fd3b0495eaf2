package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Pipeline errors
const (
	// ErrCodeEmptyInput indicates a stage received an empty record sequence
	// it cannot summarize.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"
	// ErrCodeCanceled indicates the run was canceled before completion.
	ErrCodeCanceled ErrorCode = "CANCELED"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates the loaded configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates a value failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitConfig   = 2
	ExitCanceled = 130
)

var exitCodes = map[ErrorCode]int{
	ErrCodeEmptyInput:    ExitFailure,
	ErrCodeCanceled:      ExitCanceled,
	ErrCodeInvalidConfig: ExitConfig,
	ErrCodeInvalidInput:  ExitConfig,
	ErrCodeInternal:      ExitFailure,
}

// ExitCodeFor returns the process exit code associated with code.
// Unknown codes map to ExitFailure.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitFailure
}
