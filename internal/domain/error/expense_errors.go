package error

import "errors"

// Expense and income domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrIncomeNotFound is returned when an income is not found in the system.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrNotAuthorizedToModifyEntry is returned when the record belongs to another user.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify entry")

	// ErrInvalidEntryAmount is returned when the amount is zero or negative.
	ErrInvalidEntryAmount = errors.New("invalid amount")

	// ErrInvalidEntryDate is returned when a required date is missing.
	ErrInvalidEntryDate = errors.New("invalid date")

	// ErrInvalidFrequency is returned when a recurring entry has an unknown frequency.
	ErrInvalidFrequency = errors.New("invalid recurrence frequency")

	// ErrEntryCategoryNotFound is returned when the referenced category does not exist.
	ErrEntryCategoryNotFound = errors.New("category not found")

	// ErrEntryCategoryMismatch is returned when the category does not match the entry type.
	ErrEntryCategoryMismatch = errors.New("category type does not match entry")

	// ErrEntryDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrEntryDescriptionTooLong = errors.New("description too long")

	// ErrEntryNotesTooLong is returned when the notes exceed the maximum length.
	ErrEntryNotesTooLong = errors.New("notes too long")

	// ErrSettlementExpenseLocked is returned when a change would detach a
	// commission settlement expense from its commission.
	ErrSettlementExpenseLocked = errors.New("expense settles a commission")
)

// EntryErrorCode defines error codes for expense and income errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	ErrCodeExpenseNotFound         EntryErrorCode = "ENT-010001"
	ErrCodeIncomeNotFound          EntryErrorCode = "ENT-010002"
	ErrCodeNotAuthorizedEntry      EntryErrorCode = "ENT-010003"
	ErrCodeInvalidEntryAmount      EntryErrorCode = "ENT-010004"
	ErrCodeInvalidEntryDate        EntryErrorCode = "ENT-010005"
	ErrCodeInvalidFrequency        EntryErrorCode = "ENT-010006"
	ErrCodeEntryCategoryNotFound   EntryErrorCode = "ENT-010007"
	ErrCodeEntryCategoryMismatch   EntryErrorCode = "ENT-010008"
	ErrCodeEntryDescriptionTooLong EntryErrorCode = "ENT-010009"
	ErrCodeMissingEntryFields      EntryErrorCode = "ENT-010010"
	ErrCodeEntryNotesTooLong       EntryErrorCode = "ENT-010011"
	ErrCodeSettlementExpenseLocked EntryErrorCode = "ENT-010012"
)

// EntryError represents an expense or income error with code and message.
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
