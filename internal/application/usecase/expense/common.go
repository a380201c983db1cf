// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for expense descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for expense notes.
	MaxNotesLength = 1000
)

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			"description is required",
			nil,
		)
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrEntryDescriptionTooLong,
		)
	}
	return nil
}

func validateNotes(notes string) error {
	if len([]rune(notes)) > MaxNotesLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrEntryNotesTooLong,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	return nil
}

func validateRecurrence(recurrence entity.Recurrence) error {
	if !recurrence.Recurring {
		return nil
	}
	if recurrence.Frequency == nil || !recurrence.Frequency.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'weekly', 'monthly' or 'yearly' for recurring expenses",
			domainerror.ErrInvalidFrequency,
		)
	}
	return nil
}

// resolveCategory checks the category exists, belongs to the user and is an expense category.
func resolveCategory(ctx context.Context, repo adapter.CategoryRepository, userID uuid.UUID, categoryID *uuid.UUID) (*entity.Category, error) {
	if categoryID == nil {
		return nil, nil
	}

	category, err := repo.FindByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryCategoryNotFound,
				"category not found",
				domainerror.ErrEntryCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.UserID != userID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryCategoryNotFound,
			"category not found",
			domainerror.ErrEntryCategoryNotFound,
		)
	}

	if category.Type != entity.CategoryTypeExpense {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryCategoryMismatch,
			"category must be an expense category",
			domainerror.ErrEntryCategoryMismatch,
		)
	}

	return category, nil
}

// findOwned loads an expense and checks it belongs to the user.
func findOwned(ctx context.Context, repo adapter.ExpenseRepository, expenseID, userID uuid.UUID) (*entity.Expense, error) {
	expense, err := repo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if expense.UserID != userID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to access this expense",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	return expense, nil
}

// movementFor builds the outflow that mirrors a paid expense.
func movementFor(expense *entity.Expense) *entity.CashMovement {
	expenseID := expense.ID
	return &entity.CashMovement{
		Direction:     entity.MovementOutflow,
		Amount:        expense.Amount,
		Description:   expense.Description,
		PaymentMethod: expense.PaymentMethod,
		ExpenseID:     &expenseID,
	}
}

// carryLinks copies the document links of a replaced movement, other than the
// expense itself, onto its replacement.
func carryLinks(movement *entity.CashMovement, removed []*entity.CashMovement) *entity.CashMovement {
	for _, previous := range removed {
		if movement.IncomeID == nil {
			movement.IncomeID = previous.IncomeID
		}
		if movement.SaleID == nil {
			movement.SaleID = previous.SaleID
		}
		if movement.CommissionID == nil {
			movement.CommissionID = previous.CommissionID
		}
	}
	return movement
}

// ensureNotSettlement rejects changes to an expense whose outflow pays a
// commission. A paid commission is final, so its expense keeps its amount,
// payment and existence.
func ensureNotSettlement(ctx context.Context, book *cash.Book, expense *entity.Expense) error {
	if !expense.Paid {
		return nil
	}

	movements, err := book.MovementsFor(ctx, expense.UserID, entity.MovementLink{ExpenseID: &expense.ID})
	if err != nil {
		return err
	}
	for _, movement := range movements {
		if movement.CommissionID != nil {
			return domainerror.NewEntryError(
				domainerror.ErrCodeSettlementExpenseLocked,
				"expense settles a paid commission; its amount, payment date and paid state cannot change and it cannot be deleted",
				domainerror.ErrSettlementExpenseLocked,
			)
		}
	}
	return nil
}

// restoreMovements books again movements removed by a step that later failed.
func restoreMovements(ctx context.Context, book *cash.Book, removed []*entity.CashMovement) {
	for _, movement := range removed {
		restored := *movement
		restored.ID = uuid.Nil
		restored.CreatedAt = time.Time{}
		if err := book.Record(ctx, movement.UserID, movement.Date, &restored); err != nil {
			slog.Error("Failed to restore cash movement",
				"expense_id", movement.ExpenseID,
				"error", err,
			)
		}
	}
}
