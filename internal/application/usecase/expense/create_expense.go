package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/application/usecase/party"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	DueDate       time.Time
	Paid          bool
	PaymentDate   *time.Time // Defaults to today when Paid is set
	CategoryID    *uuid.UUID
	PaymentMethod string
	Recurrence    entity.Recurrence
	SupplierID    *uuid.UUID
	SupplierName  string // defaults to the supplier's name
	Notes         string
	Tags          []string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense  *entity.Expense
	Category *entity.Category
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	supplierRepo adapter.SupplierRepository
	book         *cash.Book
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	supplierRepo adapter.SupplierRepository,
	book *cash.Book,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		book:         book,
	}
}

// Execute performs the expense creation. A paid expense gets its outflow booked
// in the cash ledger on the payment date.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	description := strings.TrimSpace(input.Description)
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.DueDate.IsZero() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"due date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}
	if err := validateRecurrence(input.Recurrence); err != nil {
		return nil, err
	}

	category, err := resolveCategory(ctx, uc.categoryRepo, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	supplierName := strings.TrimSpace(input.SupplierName)
	if input.SupplierID != nil {
		supplier, err := party.FindOwnedSupplier(ctx, uc.supplierRepo, *input.SupplierID, input.UserID)
		if err != nil {
			return nil, err
		}
		if supplierName == "" {
			supplierName = supplier.Name
		}
	}

	expense := entity.NewExpense(
		input.UserID,
		description,
		input.Amount,
		input.DueDate,
		input.CategoryID,
		input.PaymentMethod,
	)
	expense.Recurrence = input.Recurrence
	expense.SupplierID = input.SupplierID
	expense.SupplierName = supplierName
	expense.Notes = input.Notes
	expense.Tags = input.Tags

	if input.Paid {
		paymentDate := entity.Today()
		if input.PaymentDate != nil {
			paymentDate = *input.PaymentDate
		}
		expense.MarkPaid(paymentDate)
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if expense.Paid {
		if err := uc.book.Record(ctx, expense.UserID, *expense.PaymentDate, movementFor(expense)); err != nil {
			if delErr := uc.expenseRepo.Delete(ctx, expense.ID); delErr != nil {
				slog.Error("Failed to remove expense after cash movement failure",
					"expense_id", expense.ID,
					"error", delErr,
				)
			}
			return nil, err
		}
	} else {
		uc.book.Invalidate(ctx, expense.UserID)
	}

	return &CreateExpenseOutput{
		Expense:  expense,
		Category: category,
	}, nil
}
