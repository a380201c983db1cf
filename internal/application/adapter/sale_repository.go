package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// SellerRepository defines the interface for seller persistence operations.
type SellerRepository interface {
	// Create creates a new seller in the database.
	Create(ctx context.Context, seller *entity.Seller) error

	// FindByID retrieves a seller by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByUser retrieves the sellers of a user.
	FindByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Seller, error)

	// Update updates an existing seller in the database.
	Update(ctx context.Context, seller *entity.Seller) error
}

// SaleFilter narrows a sale listing.
type SaleFilter struct {
	UserID    uuid.UUID
	SellerID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a new sale in the database.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// List retrieves the sales matching the filter ordered by date.
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)

	// SumBetween totals sales within the inclusive range, optionally for one seller.
	SumBetween(ctx context.Context, userID uuid.UUID, sellerID *uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)

	// Delete removes a sale from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
