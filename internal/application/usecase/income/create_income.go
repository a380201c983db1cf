// Package income contains income-related use cases.
package income

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

// MaxDescriptionLength is the maximum allowed length for income descriptions.
const MaxDescriptionLength = 255

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	CategoryID    *uuid.UUID
	PaymentMethod string
	Recurrence    entity.Recurrence
	Notes         string
	Tags          []string
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income   *entity.Income
	Category *entity.Category
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo   adapter.IncomeRepository
	categoryRepo adapter.CategoryRepository
	book         *cash.Book
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	categoryRepo adapter.CategoryRepository,
	book *cash.Book,
) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo:   incomeRepo,
		categoryRepo: categoryRepo,
		book:         book,
	}
}

// Execute persists the income and books its inflow on the income date.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			"description is required",
			nil,
		)
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrEntryDescriptionTooLong,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}

	if input.Recurrence.Recurring && (input.Recurrence.Frequency == nil || !input.Recurrence.Frequency.IsValid()) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'weekly', 'monthly' or 'yearly' for recurring incomes",
			domainerror.ErrInvalidFrequency,
		)
	}

	category, err := uc.resolveCategory(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	income := entity.NewIncome(
		input.UserID,
		description,
		input.Amount,
		input.Date,
		input.CategoryID,
		input.PaymentMethod,
	)
	income.Recurrence = input.Recurrence
	income.Notes = input.Notes
	income.Tags = input.Tags

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	incomeID := income.ID
	movement := &entity.CashMovement{
		Direction:     entity.MovementInflow,
		Amount:        income.Amount,
		Description:   income.Description,
		PaymentMethod: income.PaymentMethod,
		IncomeID:      &incomeID,
	}
	if err := uc.book.Record(ctx, income.UserID, income.Date, movement); err != nil {
		if delErr := uc.incomeRepo.Delete(ctx, income.ID); delErr != nil {
			slog.Error("Failed to remove income after cash movement failure",
				"income_id", income.ID,
				"error", delErr,
			)
		}
		return nil, err
	}

	return &CreateIncomeOutput{
		Income:   income,
		Category: category,
	}, nil
}

func (uc *CreateIncomeUseCase) resolveCategory(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) (*entity.Category, error) {
	if categoryID == nil {
		return nil, nil
	}

	category, err := uc.categoryRepo.FindByID(ctx, *categoryID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if err != nil || category.UserID != userID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryCategoryNotFound,
			"category not found",
			domainerror.ErrEntryCategoryNotFound,
		)
	}

	if category.Type != entity.CategoryTypeIncome {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryCategoryMismatch,
			"category must be an income category",
			domainerror.ErrEntryCategoryMismatch,
		)
	}
	return category, nil
}
