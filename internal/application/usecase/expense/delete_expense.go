package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	book        *cash.Book
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, book *cash.Book) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		book:        book,
	}
}

// Execute deletes the expense together with its cash movement.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	expense, err := findOwned(ctx, uc.expenseRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := ensureNotSettlement(ctx, uc.book, expense); err != nil {
		return nil, err
	}

	var removed []*entity.CashMovement
	if expense.Paid {
		removed, err = uc.book.RemoveMovementsFor(ctx, expense.UserID, entity.MovementLink{ExpenseID: &expense.ID})
		if err != nil {
			restoreMovements(ctx, uc.book, removed)
			return nil, err
		}
	}

	if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
		restoreMovements(ctx, uc.book, removed)
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	uc.book.Invalidate(ctx, expense.UserID)

	return &DeleteExpenseOutput{
		Success: true,
	}, nil
}
