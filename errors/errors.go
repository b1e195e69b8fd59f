package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the structured engine error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need a second errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
// Re-exported so callers don't need a second errors import.
func As(err error, target any) bool { return stderrors.As(err, target) }

// IsEngineError checks if an error originated from the engine.
func IsEngineError(err error) bool {
	var e *Error
	return stderrors.As(err, &e)
}

// AsError converts an error to an *Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// --- Common Error Constructors ---

// NotIterable creates a new Error for a value that cannot be iterated.
// The value's dynamic type is recorded in the details.
func NotIterable(value any) *Error {
	return &Error{
		Code:    ErrCodeNotIterable,
		Message: fmt.Sprintf("value of type %T cannot be iterated", value),
		Details: map[string]any{"type": fmt.Sprintf("%T", value)},
	}
}

// DecodeFailed creates a new Error for a record stream that could not be decoded.
func DecodeFailed(format string, cause error) *Error {
	return &Error{
		Code:    ErrCodeDecodeFailed,
		Message: fmt.Sprintf("decoding %s record stream failed", format),
		Details: map[string]any{"format": format},
		Cause:   cause,
	}
}

// InvalidConfig creates a new Error for configuration that failed validation.
func InvalidConfig(message string) *Error {
	return &Error{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}

// InvalidInput creates a new Error for an invalid caller-supplied value.
func InvalidInput(field, reason string) *Error {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &Error{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new Error for validation failures.
func Validation(message string) *Error {
	return &Error{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}

// Internal creates a new Error for an unexpected internal error.
func Internal(cause error) *Error {
	return &Error{
		Code:    ErrCodeInternal,
		Message: "an unexpected error occurred",
		Cause:   cause,
	}
}
