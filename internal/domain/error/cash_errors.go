package error

import "errors"

// Cash ledger and report errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrDateRangeTooLarge is returned when the range exceeds the allowed number of days.
	ErrDateRangeTooLarge = errors.New("date range too large")

	// ErrSnapshotNotFound is returned when no snapshot exists for a day.
	ErrSnapshotNotFound = errors.New("cash snapshot not found")

	// ErrMovementNotFound is returned when a cash movement is not found.
	ErrMovementNotFound = errors.New("cash movement not found")

	// ErrInvalidReportType is returned when the report type is not expense or income.
	ErrInvalidReportType = errors.New("invalid report type")
)

// CashErrorCode defines error codes for cash ledger and report errors.
// Format: CSH-XXYYYY where XX is category and YYYY is specific error.
type CashErrorCode string

const (
	ErrCodeMissingStartDate  CashErrorCode = "CSH-010001"
	ErrCodeMissingEndDate    CashErrorCode = "CSH-010002"
	ErrCodeInvalidDateRange  CashErrorCode = "CSH-010003"
	ErrCodeDateRangeTooLarge CashErrorCode = "CSH-010004"
	ErrCodeInvalidDateFormat CashErrorCode = "CSH-010005"
	ErrCodeInvalidReportType CashErrorCode = "CSH-010006"
)

// CashError represents a cash ledger or report error with code and message.
type CashError struct {
	Code    CashErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CashError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CashError) Unwrap() error {
	return e.Err
}

// NewCashError creates a new CashError with the given code and message.
func NewCashError(code CashErrorCode, message string, err error) *CashError {
	return &CashError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
