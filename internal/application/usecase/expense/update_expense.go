package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/application/usecase/party"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// UpdateExpenseInput represents the input for expense update.
// Nil fields are left unchanged.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	UserID        uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	DueDate       *time.Time
	PaymentDate   *time.Time // Only applied to paid expenses
	CategoryID    *uuid.UUID
	ClearCategory bool
	PaymentMethod *string
	Recurrence    *entity.Recurrence
	SupplierID    *uuid.UUID
	ClearSupplier bool
	SupplierName  *string
	Notes         *string
	Tags          *[]string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	supplierRepo adapter.SupplierRepository
	book         *cash.Book
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	supplierRepo adapter.SupplierRepository,
	book *cash.Book,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		book:         book,
	}
}

// Execute performs the expense update. Changing the amount or payment date of a
// paid expense moves its cash movement accordingly, except for commission
// settlements, where such changes are rejected.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := findOwned(ctx, uc.expenseRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}
	original := *expense

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		expense.Description = description
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		expense.Amount = input.Amount.Round(2)
	}

	if input.DueDate != nil {
		expense.DueDate = entity.Day(*input.DueDate)
	}

	if input.PaymentDate != nil && expense.Paid {
		day := entity.Day(*input.PaymentDate)
		expense.PaymentDate = &day
	}

	if input.ClearCategory {
		expense.CategoryID = nil
	} else if input.CategoryID != nil {
		if _, err := resolveCategory(ctx, uc.categoryRepo, input.UserID, input.CategoryID); err != nil {
			return nil, err
		}
		expense.CategoryID = input.CategoryID
	}

	if input.PaymentMethod != nil {
		expense.PaymentMethod = *input.PaymentMethod
	}

	if input.Recurrence != nil {
		if err := validateRecurrence(*input.Recurrence); err != nil {
			return nil, err
		}
		expense.Recurrence = *input.Recurrence
	}

	if input.ClearSupplier {
		expense.SupplierID = nil
	} else if input.SupplierID != nil {
		supplier, err := party.FindOwnedSupplier(ctx, uc.supplierRepo, *input.SupplierID, input.UserID)
		if err != nil {
			return nil, err
		}
		expense.SupplierID = input.SupplierID
		if input.SupplierName == nil {
			expense.SupplierName = supplier.Name
		}
	}

	if input.SupplierName != nil {
		expense.SupplierName = strings.TrimSpace(*input.SupplierName)
	}

	if input.Notes != nil {
		if err := validateNotes(*input.Notes); err != nil {
			return nil, err
		}
		expense.Notes = *input.Notes
	}

	if input.Tags != nil {
		expense.Tags = *input.Tags
	}

	moved := expense.Paid && movementChanged(&original, expense)
	if moved {
		if err := ensureNotSettlement(ctx, uc.book, &original); err != nil {
			return nil, err
		}
	}

	expense.UpdatedAt = time.Now().UTC()
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if moved {
		if err := uc.resync(ctx, &original, expense); err != nil {
			return nil, err
		}
	} else {
		uc.book.Invalidate(ctx, expense.UserID)
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}

// resync replaces the movement of a paid expense. On failure the previous
// expense row and movement are put back.
func (uc *UpdateExpenseUseCase) resync(ctx context.Context, original, expense *entity.Expense) error {
	removed, err := uc.book.RemoveMovementsFor(ctx, expense.UserID, entity.MovementLink{ExpenseID: &expense.ID})
	if err != nil {
		restoreMovements(ctx, uc.book, removed)
		uc.rollback(ctx, original)
		return err
	}

	if err := uc.book.Record(ctx, expense.UserID, *expense.PaymentDate, carryLinks(movementFor(expense), removed)); err != nil {
		restoreMovements(ctx, uc.book, removed)
		uc.rollback(ctx, original)
		return err
	}
	return nil
}

func (uc *UpdateExpenseUseCase) rollback(ctx context.Context, original *entity.Expense) {
	if err := uc.expenseRepo.Update(ctx, original); err != nil {
		logRollbackFailure(original.ID, err)
	}
}

func movementChanged(before, after *entity.Expense) bool {
	if !before.Amount.Equal(after.Amount) {
		return true
	}
	if before.PaymentDate == nil || after.PaymentDate == nil {
		return before.PaymentDate != after.PaymentDate
	}
	return !before.PaymentDate.Equal(*after.PaymentDate)
}
