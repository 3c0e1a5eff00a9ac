// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Currency preference domain errors.
var (
	// ErrCurrencyNotFound is returned when a currency preference is not found.
	ErrCurrencyNotFound = errors.New("currency preference not found")

	// ErrNotAuthorizedCurrency is returned when a user reads or changes another user's preference.
	ErrNotAuthorizedCurrency = errors.New("not authorized to access currency preference")
)

// CurrencyErrorCode defines error codes for currency preference errors.
// Format: CUR-XXYYYY where XX is category and YYYY is specific error.
type CurrencyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCurrency       CurrencyErrorCode = "CUR-010001"
	ErrCodeMissingCurrencyFields CurrencyErrorCode = "CUR-010002"

	// Access errors (02XXXX)
	ErrCodeNotAuthorizedCurrency CurrencyErrorCode = "CUR-020001"

	// Method errors (03XXXX)
	ErrCodeCurrencyNotCreatable CurrencyErrorCode = "CUR-030001"
)

// CurrencyError represents a currency preference error with code and message.
type CurrencyError struct {
	Code    CurrencyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CurrencyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CurrencyError) Unwrap() error {
	return e.Err
}

// NewCurrencyError creates a new CurrencyError with the given code and message.
func NewCurrencyError(code CurrencyErrorCode, message string, err error) *CurrencyError {
	return &CurrencyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
