package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Source errors
const (
	// ErrCodeNotIterable indicates a bound source cannot be iterated.
	ErrCodeNotIterable ErrorCode = "NOT_ITERABLE"
	// ErrCodeDecodeFailed indicates a record stream could not be decoded.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates engine configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates a caller-supplied value is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// CodeOf extracts the ErrorCode from err. Returns the code of the first
// *Error in the chain, or ErrCodeInternal for any other non-nil error.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var e *Error
	if As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
