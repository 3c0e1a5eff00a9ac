// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an income or expenditure entry is not found.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrNotAuthorizedToModifyEntry is returned when a user acts on another user's entry.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify entry")

	// ErrInvalidEntryTitle is returned when the title is empty or too long.
	ErrInvalidEntryTitle = errors.New("invalid entry title")

	// ErrInvalidEntryAmount is returned when the amount is negative.
	ErrInvalidEntryAmount = errors.New("invalid entry amount")

	// ErrInvalidEntryDate is returned when the date is missing or malformed.
	ErrInvalidEntryDate = errors.New("invalid entry date")

	// ErrInvalidRepeatFrequency is returned when the repeat frequency is unknown.
	ErrInvalidRepeatFrequency = errors.New("invalid repeat frequency")

	// ErrInvalidExpenditureType is returned when the expenditure type is unknown.
	ErrInvalidExpenditureType = errors.New("invalid expenditure type")

	// ErrUnknownEntryKind is returned when an operation receives an unsupported entry kind.
	ErrUnknownEntryKind = errors.New("unknown entry kind")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryTitle      EntryErrorCode = "ENT-010001"
	ErrCodeInvalidEntryAmount     EntryErrorCode = "ENT-010002"
	ErrCodeInvalidEntryDate       EntryErrorCode = "ENT-010003"
	ErrCodeInvalidRepeatFrequency EntryErrorCode = "ENT-010004"
	ErrCodeInvalidExpenditureType EntryErrorCode = "ENT-010005"
	ErrCodeMissingEntryFields     EntryErrorCode = "ENT-010006"

	// Access errors (02XXXX)
	ErrCodeEntryNotFound      EntryErrorCode = "ENT-020001"
	ErrCodeNotAuthorizedEntry EntryErrorCode = "ENT-020002"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
