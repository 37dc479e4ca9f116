package apperrors

import "errors"

// Closed set of error kinds the HTTP layer switches on. Handlers classify
// with errors.Is, never by inspecting message text.
var (
	// Input errors
	ErrInvalidInput     = errors.New("invalid input data")
	ErrInvalidCURP      = errors.New("invalid CURP format")
	ErrInvalidPersonaID = errors.New("invalid persona ID")

	// Resource errors
	ErrRegistroNotFound = errors.New("registro not found")

	// Infrastructure errors
	ErrPersistenceFailure = errors.New("persistence failure")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// NewInvalidInputError creates an invalid-input error with a message
func NewInvalidInputError(message string) error {
	return &CustomError{
		Err:     ErrInvalidInput,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrRegistroNotFound,
		Message: message,
	}
}

// NewPersistenceError wraps a database-level failure. The cause stays
// reachable through Unwrap for logging and development-mode diagnostics.
func NewPersistenceError(cause error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrPersistenceFailure, cause),
		Message: message,
	}
}
