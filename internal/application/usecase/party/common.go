// Package party contains customer and supplier use cases.
package party

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

const (
	// MaxNameLength is the maximum allowed length for customer and supplier names.
	MaxNameLength = 100
	// MaxPhoneLength is the maximum allowed length for phone numbers.
	MaxPhoneLength = 30
	// MaxDocumentLength is the maximum allowed length for supplier documents.
	MaxDocumentLength = 20
	// MaxNotesLength is the maximum allowed length for notes.
	MaxNotesLength = 1000
)

// contact holds the fields customers and suppliers share.
type contact struct {
	name  string
	email string
	phone string
	notes string
}

func (c contact) validate() error {
	if c.name == "" {
		return domainerror.NewPartyError(
			domainerror.ErrCodeMissingPartyFields,
			"name is required",
			nil,
		)
	}
	if len([]rune(c.name)) > MaxNameLength {
		return domainerror.NewPartyError(
			domainerror.ErrCodePartyNameTooLong,
			fmt.Sprintf("name must not exceed %d characters", MaxNameLength),
			domainerror.ErrPartyNameTooLong,
		)
	}
	if c.email != "" {
		if _, err := mail.ParseAddress(c.email); err != nil {
			return domainerror.NewPartyError(
				domainerror.ErrCodeInvalidPartyEmail,
				"email is not a valid address",
				domainerror.ErrInvalidPartyEmail,
			)
		}
	}
	if err := maxLength("phone", c.phone, MaxPhoneLength); err != nil {
		return err
	}
	return maxLength("notes", c.notes, MaxNotesLength)
}

func maxLength(field, value string, limit int) error {
	if len([]rune(value)) > limit {
		return domainerror.NewPartyError(
			domainerror.ErrCodePartyFieldTooLong,
			fmt.Sprintf("%s must not exceed %d characters", field, limit),
			nil,
		)
	}
	return nil
}

// FindOwnedCustomer loads a customer and checks it belongs to the user.
// Customers of other users read as not found.
func FindOwnedCustomer(ctx context.Context, repo adapter.CustomerRepository, customerID, userID uuid.UUID) (*entity.Customer, error) {
	customer, err := repo.FindByID(ctx, customerID)
	if err != nil && !errors.Is(err, domainerror.ErrCustomerNotFound) {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if err != nil || customer.UserID != userID {
		return nil, domainerror.NewPartyError(
			domainerror.ErrCodeCustomerNotFound,
			"customer not found",
			domainerror.ErrCustomerNotFound,
		)
	}
	return customer, nil
}

// FindOwnedSupplier loads a supplier and checks it belongs to the user.
// Suppliers of other users read as not found.
func FindOwnedSupplier(ctx context.Context, repo adapter.SupplierRepository, supplierID, userID uuid.UUID) (*entity.Supplier, error) {
	supplier, err := repo.FindByID(ctx, supplierID)
	if err != nil && !errors.Is(err, domainerror.ErrSupplierNotFound) {
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	if err != nil || supplier.UserID != userID {
		return nil, domainerror.NewPartyError(
			domainerror.ErrCodeSupplierNotFound,
			"supplier not found",
			domainerror.ErrSupplierNotFound,
		)
	}
	return supplier, nil
}
