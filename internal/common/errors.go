package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrExtraction marks unreadable, encrypted, or text-free input. Fatal:
	// the whole conversion aborts and the message is user-facing.
	ErrExtraction = errors.New("extraction failed")

	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFormat   = errors.New("unsupported document format")
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")
	ErrInternal            = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewExtractionError wraps a cause as a fatal extraction failure.
func NewExtractionError(message string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", message, ErrExtraction)
	}
	return fmt.Errorf("%s: %w: %v", message, ErrExtraction, cause)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
