// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Disposable income domain errors.
var (
	// ErrBudgetNotFound is returned when a disposable budget is not found.
	ErrBudgetNotFound = errors.New("disposable budget not found")

	// ErrSpendingNotFound is returned when a disposable spending entry is not found.
	ErrSpendingNotFound = errors.New("disposable spending not found")

	// ErrNotAuthorizedDisposable is returned when a user acts on another user's record.
	ErrNotAuthorizedDisposable = errors.New("not authorized to modify disposable record")
)

// DisposableErrorCode defines error codes for disposable income errors.
// Format: DIS-XXYYYY where XX is category and YYYY is specific error.
type DisposableErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDisposableTitle  DisposableErrorCode = "DIS-010001"
	ErrCodeInvalidDisposableAmount DisposableErrorCode = "DIS-010002"
	ErrCodeInvalidDisposableDate   DisposableErrorCode = "DIS-010003"
	ErrCodeMissingDisposableFields DisposableErrorCode = "DIS-010004"

	// Access errors (02XXXX)
	ErrCodeBudgetNotFound          DisposableErrorCode = "DIS-020001"
	ErrCodeSpendingNotFound        DisposableErrorCode = "DIS-020002"
	ErrCodeNotAuthorizedDisposable DisposableErrorCode = "DIS-020003"
)

// DisposableError represents a disposable income error with code and message.
type DisposableError struct {
	Code    DisposableErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DisposableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DisposableError) Unwrap() error {
	return e.Err
}

// NewDisposableError creates a new DisposableError with the given code and message.
func NewDisposableError(code DisposableErrorCode, message string, err error) *DisposableError {
	return &DisposableError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
