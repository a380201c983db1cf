package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// ExpenseDateField selects which date an expense filter applies to.
type ExpenseDateField string

const (
	ExpenseDateDue     ExpenseDateField = "due_date"
	ExpenseDatePayment ExpenseDateField = "payment_date"
)

// ExpenseFilter narrows an expense listing.
type ExpenseFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	DateField  ExpenseDateField // Defaults to due date
	Paid       *bool
	CategoryID *uuid.UUID
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// List retrieves the expenses matching the filter ordered by date.
	List(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
