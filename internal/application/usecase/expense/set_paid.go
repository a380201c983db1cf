package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// SetPaidInput represents the input for toggling the paid flag of an expense.
type SetPaidInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Paid        bool
	PaymentDate *time.Time // Defaults to today
}

// SetPaidOutput represents the output of toggling the paid flag.
type SetPaidOutput struct {
	Expense *entity.Expense
	Changed bool
}

// SetPaidUseCase marks an expense as paid or unpaid and keeps its cash movement in step.
type SetPaidUseCase struct {
	expenseRepo adapter.ExpenseRepository
	book        *cash.Book
}

// NewSetPaidUseCase creates a new SetPaidUseCase instance.
func NewSetPaidUseCase(expenseRepo adapter.ExpenseRepository, book *cash.Book) *SetPaidUseCase {
	return &SetPaidUseCase{
		expenseRepo: expenseRepo,
		book:        book,
	}
}

// Execute toggles the paid flag. Setting the current state again is a no-op.
func (uc *SetPaidUseCase) Execute(ctx context.Context, input SetPaidInput) (*SetPaidOutput, error) {
	expense, err := findOwned(ctx, uc.expenseRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}

	if expense.Paid == input.Paid {
		return &SetPaidOutput{Expense: expense}, nil
	}

	if input.Paid {
		err = uc.pay(ctx, expense, input.PaymentDate)
	} else {
		err = uc.unpay(ctx, expense)
	}
	if err != nil {
		return nil, err
	}

	return &SetPaidOutput{
		Expense: expense,
		Changed: true,
	}, nil
}

func (uc *SetPaidUseCase) pay(ctx context.Context, expense *entity.Expense, paymentDate *time.Time) error {
	day := entity.Today()
	if paymentDate != nil {
		day = *paymentDate
	}

	expense.MarkPaid(day)
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	if err := uc.book.Record(ctx, expense.UserID, *expense.PaymentDate, movementFor(expense)); err != nil {
		expense.MarkUnpaid()
		if revertErr := uc.expenseRepo.Update(ctx, expense); revertErr != nil {
			logRollbackFailure(expense.ID, revertErr)
		}
		return err
	}
	return nil
}

func (uc *SetPaidUseCase) unpay(ctx context.Context, expense *entity.Expense) error {
	if err := ensureNotSettlement(ctx, uc.book, expense); err != nil {
		return err
	}

	removed, err := uc.book.RemoveMovementsFor(ctx, expense.UserID, entity.MovementLink{ExpenseID: &expense.ID})
	if err != nil {
		restoreMovements(ctx, uc.book, removed)
		return err
	}

	paymentDate := expense.PaymentDate
	expense.MarkUnpaid()
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		expense.Paid = true
		expense.PaymentDate = paymentDate
		restoreMovements(ctx, uc.book, removed)
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func logRollbackFailure(expenseID uuid.UUID, err error) {
	slog.Error("Failed to revert expense after cash movement failure",
		"expense_id", expenseID,
		"error", err,
	)
}
