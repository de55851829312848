package store

import (
	"github.com/jmgilman/go/errors"
)

// Store-specific error codes. NotFound, AlreadyExists, InvalidInput and
// Forbidden use the shared codes from github.com/jmgilman/go/errors.
const (
	CodeInvalidID    errors.ErrorCode = "INVALID_ID"
	CodeEmptyContent errors.ErrorCode = "EMPTY_CONTENT" // reserved
)

func errNotFound(name string) error {
	return errors.WithContext(
		errors.Newf(errors.CodeNotFound, "File '%s' not found", name),
		"name", name,
	)
}

func errAlreadyExists(name string) error {
	return errors.WithContext(
		errors.Newf(errors.CodeAlreadyExists, "File '%s' already exists", name),
		"name", name,
	)
}

func errInvalidID(id uint32) error {
	return errors.WithContext(
		errors.Newf(CodeInvalidID, "Invalid file ID: %d", id),
		"id", id,
	)
}

// InvalidInput builds the error returned for rejected names or blank input.
func InvalidInput(msg string) error {
	return errors.Newf(errors.CodeInvalidInput, "Invalid input: %s", msg)
}

// AccessDenied is reserved; no current operation is permission checked.
func AccessDenied(msg string) error {
	return errors.Newf(errors.CodeForbidden, "Access denied: %s", msg)
}

// EmptyContent is reserved; the Store accepts empty content.
func EmptyContent() error {
	return errors.New(CodeEmptyContent, "Cannot create file with empty content")
}

// IsNotFound reports whether err is a missing-name failure.
func IsNotFound(err error) bool {
	return errors.GetCode(err) == errors.CodeNotFound
}

// IsAlreadyExists reports whether err is a duplicate-name failure.
func IsAlreadyExists(err error) bool {
	return errors.GetCode(err) == errors.CodeAlreadyExists
}

// IsInvalidInput reports whether err is a validation failure.
func IsInvalidInput(err error) bool {
	return errors.GetCode(err) == errors.CodeInvalidInput
}

// IsInvalidID reports whether err is a missing-id failure.
func IsInvalidID(err error) bool {
	return errors.GetCode(err) == CodeInvalidID
}
