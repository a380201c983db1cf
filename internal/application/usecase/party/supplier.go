package party

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// CreateSupplierInput represents the input for supplier creation.
type CreateSupplierInput struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	Phone    string
	Document string
	Notes    string
}

// CreateSupplierOutput represents the output of supplier creation.
type CreateSupplierOutput struct {
	Supplier *entity.Supplier
}

// CreateSupplierUseCase handles supplier creation logic.
type CreateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewCreateSupplierUseCase creates a new CreateSupplierUseCase instance.
func NewCreateSupplierUseCase(supplierRepo adapter.SupplierRepository) *CreateSupplierUseCase {
	return &CreateSupplierUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute performs the supplier creation.
func (uc *CreateSupplierUseCase) Execute(ctx context.Context, input CreateSupplierInput) (*CreateSupplierOutput, error) {
	c := contact{
		name:  strings.TrimSpace(input.Name),
		email: strings.TrimSpace(input.Email),
		phone: strings.TrimSpace(input.Phone),
		notes: input.Notes,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	document := strings.TrimSpace(input.Document)
	if err := maxLength("document", document, MaxDocumentLength); err != nil {
		return nil, err
	}

	supplier := entity.NewSupplier(input.UserID, c.name, c.email, c.phone, document)
	supplier.Notes = c.notes
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return &CreateSupplierOutput{
		Supplier: supplier,
	}, nil
}

// ListSuppliersInput represents the input for listing suppliers.
type ListSuppliersInput struct {
	UserID uuid.UUID
	Search string
}

// ListSuppliersOutput represents the output of listing suppliers.
type ListSuppliersOutput struct {
	Suppliers []*entity.Supplier
}

// ListSuppliersUseCase handles supplier listing logic.
type ListSuppliersUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewListSuppliersUseCase creates a new ListSuppliersUseCase instance.
func NewListSuppliersUseCase(supplierRepo adapter.SupplierRepository) *ListSuppliersUseCase {
	return &ListSuppliersUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute performs the supplier listing.
func (uc *ListSuppliersUseCase) Execute(ctx context.Context, input ListSuppliersInput) (*ListSuppliersOutput, error) {
	suppliers, err := uc.supplierRepo.FindByUser(ctx, input.UserID, input.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	return &ListSuppliersOutput{
		Suppliers: suppliers,
	}, nil
}

// UpdateSupplierInput represents the input for supplier update.
// Nil fields are left unchanged.
type UpdateSupplierInput struct {
	SupplierID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Email      *string
	Phone      *string
	Document   *string
	Notes      *string
}

// UpdateSupplierOutput represents the output of supplier update.
type UpdateSupplierOutput struct {
	Supplier *entity.Supplier
}

// UpdateSupplierUseCase handles supplier update logic.
type UpdateSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewUpdateSupplierUseCase creates a new UpdateSupplierUseCase instance.
func NewUpdateSupplierUseCase(supplierRepo adapter.SupplierRepository) *UpdateSupplierUseCase {
	return &UpdateSupplierUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute performs the supplier update.
func (uc *UpdateSupplierUseCase) Execute(ctx context.Context, input UpdateSupplierInput) (*UpdateSupplierOutput, error) {
	supplier, err := FindOwnedSupplier(ctx, uc.supplierRepo, input.SupplierID, input.UserID)
	if err != nil {
		return nil, err
	}

	c := contact{name: supplier.Name, email: supplier.Email, phone: supplier.Phone, notes: supplier.Notes}
	if input.Name != nil {
		c.name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		c.email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		c.phone = strings.TrimSpace(*input.Phone)
	}
	if input.Notes != nil {
		c.notes = *input.Notes
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	document := supplier.Document
	if input.Document != nil {
		document = strings.TrimSpace(*input.Document)
		if err := maxLength("document", document, MaxDocumentLength); err != nil {
			return nil, err
		}
	}

	supplier.Name, supplier.Email, supplier.Phone, supplier.Notes = c.name, c.email, c.phone, c.notes
	supplier.Document = document
	supplier.UpdatedAt = time.Now().UTC()
	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return &UpdateSupplierOutput{
		Supplier: supplier,
	}, nil
}

// DeleteSupplierInput represents the input for supplier deletion.
type DeleteSupplierInput struct {
	SupplierID uuid.UUID
	UserID     uuid.UUID
}

// DeleteSupplierUseCase soft-deletes a supplier.
type DeleteSupplierUseCase struct {
	supplierRepo adapter.SupplierRepository
}

// NewDeleteSupplierUseCase creates a new DeleteSupplierUseCase instance.
func NewDeleteSupplierUseCase(supplierRepo adapter.SupplierRepository) *DeleteSupplierUseCase {
	return &DeleteSupplierUseCase{
		supplierRepo: supplierRepo,
	}
}

// Execute performs the supplier deletion.
func (uc *DeleteSupplierUseCase) Execute(ctx context.Context, input DeleteSupplierInput) error {
	if _, err := FindOwnedSupplier(ctx, uc.supplierRepo, input.SupplierID, input.UserID); err != nil {
		return err
	}

	if err := uc.supplierRepo.Delete(ctx, input.SupplierID); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return nil
}
