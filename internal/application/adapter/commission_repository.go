package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CommissionFilter narrows a commission listing.
type CommissionFilter struct {
	UserID   uuid.UUID
	Status   *entity.CommissionStatus
	SellerID *uuid.UUID
}

// CommissionRepository defines the interface for commission persistence operations.
type CommissionRepository interface {
	// Create creates a new commission in the database.
	Create(ctx context.Context, commission *entity.Commission) error

	// FindByID retrieves a commission by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Commission, error)

	// ExistsBySaleID checks whether the sale already has a commission.
	ExistsBySaleID(ctx context.Context, saleID uuid.UUID) (bool, error)

	// List retrieves the commissions matching the filter, newest first.
	List(ctx context.Context, filter CommissionFilter) ([]*entity.Commission, error)

	// UpdateStatus writes status, payment date and expense link of the commission
	// only if its stored status still equals from. It reports whether a row changed.
	UpdateStatus(ctx context.Context, commission *entity.Commission, from entity.CommissionStatus) (bool, error)
}
