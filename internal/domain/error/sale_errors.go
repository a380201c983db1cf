package error

import "errors"

// Seller and sale domain errors.
var (
	// ErrSellerNotFound is returned when a seller is not found in the system.
	ErrSellerNotFound = errors.New("seller not found")

	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInvalidCommissionRate is returned when a rate is outside 0-100.
	ErrInvalidCommissionRate = errors.New("invalid commission rate")

	// ErrInvalidSaleAmount is returned when the sale total is zero or negative.
	ErrInvalidSaleAmount = errors.New("invalid sale amount")

	// ErrSellerInactive is returned when recording a sale for an inactive seller.
	ErrSellerInactive = errors.New("seller is inactive")

	// ErrNotAuthorizedToModifySale is returned when the record belongs to another user.
	ErrNotAuthorizedToModifySale = errors.New("not authorized to access sale")
)

// SaleErrorCode defines error codes for seller and sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	ErrCodeSellerNotFound        SaleErrorCode = "SAL-010001"
	ErrCodeSaleNotFound          SaleErrorCode = "SAL-010002"
	ErrCodeInvalidCommissionRate SaleErrorCode = "SAL-010003"
	ErrCodeInvalidSaleAmount     SaleErrorCode = "SAL-010004"
	ErrCodeSellerInactive        SaleErrorCode = "SAL-010005"
	ErrCodeNotAuthorizedSale     SaleErrorCode = "SAL-010006"
	ErrCodeMissingSaleFields     SaleErrorCode = "SAL-010007"
)

// SaleError represents a seller or sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
