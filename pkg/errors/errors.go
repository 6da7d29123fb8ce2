// Package errors provides structured error types for depgen.
//
// Every failure depgen detects is fatal: an install command or license
// attribution that is silently wrong is worse than no output at all. The
// codes below let the CLI and tests tell the failure categories apart.
//
// # Error Codes
//
//   - UNSUPPORTED_DEPENDENCY: a dependency shape the tool cannot handle
//   - MISSING_ROOT_PACKAGE: cargo metadata has no root package
//   - INVALID_MANIFEST: Cargo.toml is unreadable or malformed
//   - SIDE_FILE: an override side-file is missing or malformed
//   - PACKAGE_NOT_FOUND: a dependency does not resolve in the package index
//   - METADATA: cargo metadata failed or produced bad output
//   - INVALID_CONFIG: configuration failed validation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedDependency, "%s: optional dependencies are not supported", name)
//	if errors.Is(err, errors.ErrCodeUnsupportedDependency) {
//	    // ...
//	}
//
//	err := errors.Wrap(errors.ErrCodeSideFile, origErr, "%s: reading %s", pkg, path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeUnsupportedDependency Code = "UNSUPPORTED_DEPENDENCY"
	ErrCodeMissingRootPackage    Code = "MISSING_ROOT_PACKAGE"
	ErrCodeInvalidManifest       Code = "INVALID_MANIFEST"
	ErrCodeSideFile              Code = "SIDE_FILE"
	ErrCodePackageNotFound       Code = "PACKAGE_NOT_FOUND"
	ErrCodeMetadata              Code = "METADATA"
	ErrCodeInvalidConfig         Code = "INVALID_CONFIG"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed by
// the cause when there is one. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}
