package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// ProductFilter narrows a product listing.
type ProductFilter struct {
	UserID     uuid.UUID
	Status     *entity.ProductStatus
	SupplierID *uuid.UUID
}

// ProductRepository defines the interface for inventory persistence operations.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves the products matching the filter ordered by name.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Update writes the descriptive fields and prices of a product. Status and
	// sale link are only written by UpdateStatus.
	Update(ctx context.Context, product *entity.Product) error

	// UpdateStatus writes status, sale link and sold date only while the stored
	// status equals from. It reports whether the row was updated.
	UpdateStatus(ctx context.Context, product *entity.Product, from entity.ProductStatus) (bool, error)

	// Delete removes a product from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
