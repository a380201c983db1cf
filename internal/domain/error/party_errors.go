package error

import "errors"

// Customer and supplier domain errors.
var (
	// ErrCustomerNotFound is returned when a customer is not found in the system.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrSupplierNotFound is returned when a supplier is not found in the system.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrPartyNameTooLong is returned when the name exceeds the maximum length.
	ErrPartyNameTooLong = errors.New("name too long")

	// ErrInvalidPartyEmail is returned when the email address does not parse.
	ErrInvalidPartyEmail = errors.New("invalid email")
)

// PartyErrorCode defines error codes for customer and supplier errors.
// Format: PTY-XXYYYY where XX is category and YYYY is specific error.
type PartyErrorCode string

const (
	ErrCodeCustomerNotFound   PartyErrorCode = "PTY-010001"
	ErrCodeSupplierNotFound   PartyErrorCode = "PTY-010002"
	ErrCodePartyNameTooLong   PartyErrorCode = "PTY-010003"
	ErrCodeInvalidPartyEmail  PartyErrorCode = "PTY-010004"
	ErrCodeMissingPartyFields PartyErrorCode = "PTY-010005"
	ErrCodePartyFieldTooLong  PartyErrorCode = "PTY-010006"
)

// PartyError represents a customer or supplier error with code and message.
type PartyError struct {
	Code    PartyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PartyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PartyError) Unwrap() error {
	return e.Err
}

// NewPartyError creates a new PartyError with the given code and message.
func NewPartyError(code PartyErrorCode, message string, err error) *PartyError {
	return &PartyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
