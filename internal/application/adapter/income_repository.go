package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// IncomeFilter narrows an income listing.
type IncomeFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// List retrieves the incomes matching the filter ordered by date.
	List(ctx context.Context, filter IncomeFilter) ([]*entity.Income, error)

	// SumBetween totals the incomes of a user within the inclusive date range.
	SumBetween(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)

	// Delete removes an income from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
