// Package errors provides unified error handling for querykit.
// It implements structured error types with machine-readable codes so
// engine failures (non-iterable sources, decode failures, invalid
// configuration) can be distinguished from failures raised by
// caller-supplied predicates and mappers, which propagate unchanged.
package errors
