// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Maintenance errors raised by the recurrence engine.
var (
	// ErrNotASeries is returned when a series operation receives a non-repeating entry.
	ErrNotASeries = errors.New("entry does not repeat weekly or monthly")
)

// MaintenanceStep names a stage of the monthly maintenance pass.
type MaintenanceStep string

const (
	StepExtendIncome      MaintenanceStep = "extend_income"
	StepExtendExpenditure MaintenanceStep = "extend_expenditure"
	StepPrune             MaintenanceStep = "prune"
	StepMarker            MaintenanceStep = "marker"
)

// MaintenanceErrorCode defines error codes for maintenance failures.
// Format: MNT-XXYYYY where XX is category and YYYY is specific error.
type MaintenanceErrorCode string

const (
	// Store errors (03XXXX)
	ErrCodeExtendIncomeFailed      MaintenanceErrorCode = "MNT-030001"
	ErrCodeExtendExpenditureFailed MaintenanceErrorCode = "MNT-030002"
	ErrCodePruneFailed             MaintenanceErrorCode = "MNT-030003"
	ErrCodeMarkerFailed            MaintenanceErrorCode = "MNT-030004"
)

var maintenanceStepCodes = map[MaintenanceStep]MaintenanceErrorCode{
	StepExtendIncome:      ErrCodeExtendIncomeFailed,
	StepExtendExpenditure: ErrCodeExtendExpenditureFailed,
	StepPrune:             ErrCodePruneFailed,
	StepMarker:            ErrCodeMarkerFailed,
}

// MaintenanceError reports which maintenance step failed.
type MaintenanceError struct {
	Code MaintenanceErrorCode
	Step MaintenanceStep
	Err  error
}

// Error implements the error interface.
func (e *MaintenanceError) Error() string {
	return string(e.Code) + ": maintenance step " + string(e.Step) + " failed: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *MaintenanceError) Unwrap() error {
	return e.Err
}

// NewMaintenanceError wraps err with the failing step.
func NewMaintenanceError(step MaintenanceStep, err error) *MaintenanceError {
	return &MaintenanceError{
		Code: maintenanceStepCodes[step],
		Step: step,
		Err:  err,
	}
}
