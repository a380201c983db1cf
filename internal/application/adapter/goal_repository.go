package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// GoalFilter narrows a goal listing. Nil fields match every goal.
type GoalFilter struct {
	UserID   uuid.UUID
	Metric   *entity.GoalMetric
	SellerID *uuid.UUID
}

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID returns ErrGoalNotFound for missing or soft-deleted goals.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// List returns the goals matching the filter ordered by name.
	List(ctx context.Context, filter GoalFilter) ([]*entity.Goal, error)

	Update(ctx context.Context, goal *entity.Goal) error

	// Delete soft-deletes the goal; a goal already gone yields ErrGoalNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
