// ABOUTME: Custom error types for the core preview logic
// ABOUTME: Provides structured errors for rendering feedback and API responses

package errors

import (
	"errors"
	"fmt"

	"filepreview-app/core/domain"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// PreviewError is a user-visible failure while previewing a file.
// Message is the fixed text shown in the output region.
type PreviewError struct {
	Kind    domain.ErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *PreviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause
func (e *PreviewError) Unwrap() error {
	return e.Err
}

// Fixed user-facing messages, one per error kind
const (
	MsgEmptyFile         = "File is empty!"
	MsgUnsupportedType   = "Please upload a text file (.txt, .log, .csv, .md, .js)"
	MsgWhitespaceOnly    = "File is empty or contains only whitespace!"
	MsgReadFailure       = "Error reading file!"
	MsgProcessingFailure = "Error processing file content!"
)

// ErrWhitespaceOnly is returned by the line extractor when the content has no non-blank line
var ErrWhitespaceOnly = NewPreviewError(domain.WhitespaceOnlyContent, nil)

// NewPreviewError builds a PreviewError carrying the fixed message for kind
func NewPreviewError(kind domain.ErrorKind, cause error) *PreviewError {
	return &PreviewError{Kind: kind, Message: MessageFor(kind), Err: cause}
}

// MessageFor returns the fixed message for an error kind
func MessageFor(kind domain.ErrorKind) string {
	switch kind {
	case domain.EmptyFile:
		return MsgEmptyFile
	case domain.UnsupportedType:
		return MsgUnsupportedType
	case domain.WhitespaceOnlyContent:
		return MsgWhitespaceOnly
	case domain.ReadFailure:
		return MsgReadFailure
	default:
		return MsgProcessingFailure
	}
}

// KindOf returns the preview error kind carried by err.
// Errors that are not PreviewErrors count as processing failures.
func KindOf(err error) domain.ErrorKind {
	var previewErr *PreviewError
	if errors.As(err, &previewErr) {
		return previewErr.Kind
	}
	return domain.ProcessingFailure
}

// IsKind reports whether err is a PreviewError of the given kind
func IsKind(err error, kind domain.ErrorKind) bool {
	var previewErr *PreviewError
	return errors.As(err, &previewErr) && previewErr.Kind == kind
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
