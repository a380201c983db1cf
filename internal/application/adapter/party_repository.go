package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations.
type CustomerRepository interface {
	// Create creates a new customer in the database.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by its ID. Deleted customers are not found.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByUser retrieves the customers of a user ordered by name. A non-empty
	// search matches name, email or phone.
	FindByUser(ctx context.Context, userID uuid.UUID, search string) ([]*entity.Customer, error)

	// Update updates an existing customer in the database.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete soft-deletes a customer. Sales keep their reference.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository defines the interface for supplier persistence operations.
type SupplierRepository interface {
	// Create creates a new supplier in the database.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a supplier by its ID. Deleted suppliers are not found.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindByUser retrieves the suppliers of a user ordered by name. A non-empty
	// search matches name, email or document.
	FindByUser(ctx context.Context, userID uuid.UUID, search string) ([]*entity.Supplier, error)

	// Update updates an existing supplier in the database.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// Delete soft-deletes a supplier. Expenses and products keep their reference.
	Delete(ctx context.Context, id uuid.UUID) error
}
