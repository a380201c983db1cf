package error

import "errors"

// Inventory domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the system.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNotAvailable is returned when selling, repricing or deleting a sold product.
	ErrProductNotAvailable = errors.New("product already sold")

	// ErrInvalidProductPrice is returned when a price is negative, or the sale price is zero.
	ErrInvalidProductPrice = errors.New("invalid product price")

	// ErrInvalidProductStatus is returned when filtering by an unknown status.
	ErrInvalidProductStatus = errors.New("invalid product status")
)

// ProductErrorCode defines error codes for inventory errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	ErrCodeProductNotFound      ProductErrorCode = "INV-010001"
	ErrCodeProductNotAvailable  ProductErrorCode = "INV-010002"
	ErrCodeInvalidProductPrice  ProductErrorCode = "INV-010003"
	ErrCodeMissingProductFields ProductErrorCode = "INV-010004"
	ErrCodeInvalidProductStatus ProductErrorCode = "INV-010005"
	ErrCodeProductFieldTooLong  ProductErrorCode = "INV-010006"
)

// ProductError represents an inventory error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
