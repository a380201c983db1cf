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

// CreateCustomerInput represents the input for customer creation.
type CreateCustomerInput struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Phone  string
	Notes  string
}

// CreateCustomerOutput represents the output of customer creation.
type CreateCustomerOutput struct {
	Customer *entity.Customer
}

// CreateCustomerUseCase handles customer creation logic.
type CreateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewCreateCustomerUseCase creates a new CreateCustomerUseCase instance.
func NewCreateCustomerUseCase(customerRepo adapter.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer creation.
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, input CreateCustomerInput) (*CreateCustomerOutput, error) {
	c := contact{
		name:  strings.TrimSpace(input.Name),
		email: strings.TrimSpace(input.Email),
		phone: strings.TrimSpace(input.Phone),
		notes: input.Notes,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	customer := entity.NewCustomer(input.UserID, c.name, c.email, c.phone)
	customer.Notes = c.notes
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &CreateCustomerOutput{
		Customer: customer,
	}, nil
}

// ListCustomersInput represents the input for listing customers.
type ListCustomersInput struct {
	UserID uuid.UUID
	Search string
}

// ListCustomersOutput represents the output of listing customers.
type ListCustomersOutput struct {
	Customers []*entity.Customer
}

// ListCustomersUseCase handles customer listing logic.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(customerRepo adapter.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer listing.
func (uc *ListCustomersUseCase) Execute(ctx context.Context, input ListCustomersInput) (*ListCustomersOutput, error) {
	customers, err := uc.customerRepo.FindByUser(ctx, input.UserID, input.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &ListCustomersOutput{
		Customers: customers,
	}, nil
}

// UpdateCustomerInput represents the input for customer update.
// Nil fields are left unchanged.
type UpdateCustomerInput struct {
	CustomerID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Email      *string
	Phone      *string
	Notes      *string
}

// UpdateCustomerOutput represents the output of customer update.
type UpdateCustomerOutput struct {
	Customer *entity.Customer
}

// UpdateCustomerUseCase handles customer update logic. Sales keep the customer
// name they were recorded with.
type UpdateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewUpdateCustomerUseCase creates a new UpdateCustomerUseCase instance.
func NewUpdateCustomerUseCase(customerRepo adapter.CustomerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer update.
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, input UpdateCustomerInput) (*UpdateCustomerOutput, error) {
	customer, err := FindOwnedCustomer(ctx, uc.customerRepo, input.CustomerID, input.UserID)
	if err != nil {
		return nil, err
	}

	c := contact{name: customer.Name, email: customer.Email, phone: customer.Phone, notes: customer.Notes}
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

	customer.Name, customer.Email, customer.Phone, customer.Notes = c.name, c.email, c.phone, c.notes
	customer.UpdatedAt = time.Now().UTC()
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return &UpdateCustomerOutput{
		Customer: customer,
	}, nil
}

// DeleteCustomerInput represents the input for customer deletion.
type DeleteCustomerInput struct {
	CustomerID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCustomerUseCase soft-deletes a customer.
type DeleteCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewDeleteCustomerUseCase creates a new DeleteCustomerUseCase instance.
func NewDeleteCustomerUseCase(customerRepo adapter.CustomerRepository) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer deletion.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, input DeleteCustomerInput) error {
	if _, err := FindOwnedCustomer(ctx, uc.customerRepo, input.CustomerID, input.UserID); err != nil {
		return err
	}

	if err := uc.customerRepo.Delete(ctx, input.CustomerID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
