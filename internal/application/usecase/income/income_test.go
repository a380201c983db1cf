package income

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestIncomeLifecycleDrivesCash(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	category := entity.NewCategory(userID, "Consignado", "#333333", "tag", entity.CategoryTypeIncome)
	incomes := usecasetest.NewIncomeRepository()
	cashRepo := usecasetest.NewCashRepository()
	book := cash.NewBook(cashRepo, nil)
	receivedOn := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	created, err := NewCreateIncomeUseCase(incomes, usecasetest.NewCategoryRepository(category), book).Execute(ctx, CreateIncomeInput{
		UserID:      userID,
		Description: "Repasse consignado",
		Amount:      decimal.RequireFromString("350.00"),
		Date:        receivedOn,
		CategoryID:  &category.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := cashRepo.Snapshot(userID, receivedOn)
	if snapshot == nil || !snapshot.InflowTotal.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("expected inflow of 350 on %s, got %+v", receivedOn, snapshot)
	}

	if _, err := NewDeleteIncomeUseCase(incomes, book).Execute(ctx, DeleteIncomeInput{
		IncomeID: created.Income.ID,
		UserID:   userID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := len(cashRepo.Movements(userID)); n != 0 {
		t.Errorf("expected movement removed, got %d", n)
	}
	if snapshot := cashRepo.Snapshot(userID, receivedOn); !snapshot.InflowTotal.IsZero() {
		t.Errorf("expected inflow reverted, got %s", snapshot.InflowTotal)
	}
}

func TestCreateIncome_RejectsExpenseCategory(t *testing.T) {
	userID := uuid.New()
	category := entity.NewCategory(userID, "Aluguel", "#333333", "tag", entity.CategoryTypeExpense)

	_, err := NewCreateIncomeUseCase(usecasetest.NewIncomeRepository(), usecasetest.NewCategoryRepository(category), cash.NewBook(usecasetest.NewCashRepository(), nil)).
		Execute(context.Background(), CreateIncomeInput{
			UserID:      userID,
			Description: "Repasse",
			Amount:      decimal.NewFromInt(10),
			Date:        time.Now(),
			CategoryID:  &category.ID,
		})
	if !errors.Is(err, domainerror.ErrEntryCategoryMismatch) {
		t.Errorf("expected ErrEntryCategoryMismatch, got %v", err)
	}
}
