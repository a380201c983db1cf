package error

import "errors"

// Commission domain errors.
var (
	// ErrCommissionNotFound is returned when a commission is not found in the system.
	ErrCommissionNotFound = errors.New("commission not found")

	// ErrCommissionAlreadyPaid is returned when settling a commission that is already paid.
	ErrCommissionAlreadyPaid = errors.New("commission already paid")

	// ErrCommissionReversed is returned when settling or approving a reversed commission.
	ErrCommissionReversed = errors.New("commission is reversed")

	// ErrInvalidCommissionTransition is returned when a status change is not allowed.
	ErrInvalidCommissionTransition = errors.New("invalid commission status transition")

	// ErrCommissionAlreadyExists is returned when a sale already has a commission.
	ErrCommissionAlreadyExists = errors.New("commission already exists for this sale")

	// ErrSaleWithoutSeller is returned when a commission is requested for a sale with no seller.
	ErrSaleWithoutSeller = errors.New("sale has no seller")

	// ErrSettlementCategoryInvalid is returned when the expense category cannot receive the settlement.
	ErrSettlementCategoryInvalid = errors.New("settlement category must be an expense category")

	// ErrUnauthorizedCommissionAccess is returned when the commission belongs to another user.
	ErrUnauthorizedCommissionAccess = errors.New("unauthorized access to commission")

	// ErrSettlementRollbackFailed is returned when compensation after a failed settlement also failed.
	ErrSettlementRollbackFailed = errors.New("settlement rollback failed")
)

// CommissionErrorCode defines error codes for commission errors.
// Format: COM-XXYYYY where XX is category and YYYY is specific error.
type CommissionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCommissionNotFound      CommissionErrorCode = "COM-010001"
	ErrCodeCommissionAlreadyPaid   CommissionErrorCode = "COM-010002"
	ErrCodeCommissionReversed      CommissionErrorCode = "COM-010003"
	ErrCodeInvalidTransition       CommissionErrorCode = "COM-010004"
	ErrCodeCommissionAlreadyExists CommissionErrorCode = "COM-010005"
	ErrCodeSaleWithoutSeller       CommissionErrorCode = "COM-010006"
	ErrCodeSettlementCategory      CommissionErrorCode = "COM-010007"
	ErrCodeUnauthorizedCommission  CommissionErrorCode = "COM-010008"
	ErrCodeMissingCommissionFields CommissionErrorCode = "COM-010009"

	// Settlement failures (02XXXX)
	ErrCodeSettlementFailed         CommissionErrorCode = "COM-020001"
	ErrCodeSettlementRollbackFailed CommissionErrorCode = "COM-020002"
)

// CommissionError represents a commission error with code and message.
type CommissionError struct {
	Code    CommissionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CommissionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CommissionError) Unwrap() error {
	return e.Err
}

// NewCommissionError creates a new CommissionError with the given code and message.
func NewCommissionError(code CommissionErrorCode, message string, err error) *CommissionError {
	return &CommissionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
