package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func paidExpense(userID uuid.UUID, categoryID *uuid.UUID, amount string, paidOn time.Time) *entity.Expense {
	e := entity.NewExpense(userID, "Despesa", decimal.RequireFromString(amount), paidOn, categoryID, "pix")
	e.MarkPaid(paidOn)
	return e
}

func TestGetCategoryBreakdown_Expenses(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	rent := entity.NewCategory(userID, "Aluguel", "#111111", "home", entity.CategoryTypeExpense)

	unpaid := entity.NewExpense(userID, "Luz", decimal.NewFromInt(999), d(2025, 3, 10), &rent.ID, "pix")
	expenses := usecasetest.NewExpenseRepository(
		paidExpense(userID, &rent.ID, "800", d(2025, 3, 5)),
		paidExpense(userID, nil, "200", d(2025, 3, 20)),
		paidExpense(userID, &rent.ID, "500", d(2025, 4, 1)),
		unpaid,
	)
	cache := usecasetest.NewReportCache()

	uc := NewGetCategoryBreakdownUseCase(
		expenses,
		usecasetest.NewIncomeRepository(),
		usecasetest.NewSaleRepository(),
		usecasetest.NewCategoryRepository(rent),
		cache,
		0,
	)

	input := GetCategoryBreakdownInput{
		UserID:    userID,
		Type:      entity.CategoryTypeExpense,
		StartDate: d(2025, 3, 1),
		EndDate:   d(2025, 3, 31),
	}
	output, err := uc.Execute(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected total 1000, got %s", output.Total)
	}
	if len(output.Categories) != 2 || output.Categories[0].CategoryName != "Aluguel" || output.Categories[0].Percentage != 80 {
		t.Errorf("unexpected categories: %+v", output.Categories)
	}
	if output.PeriodLabel != "Mar 2025" {
		t.Errorf("expected Mar 2025, got %s", output.PeriodLabel)
	}

	t.Run("served from cache", func(t *testing.T) {
		expenses.Fail("List", errors.New("should not be called"))
		defer expenses.Fail("List", nil)

		cached, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cached.Total.Equal(output.Total) {
			t.Errorf("expected cached total %s, got %s", output.Total, cached.Total)
		}
	})
}

func TestGetCategoryBreakdown_IncomeIncludesSales(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	consignment := entity.NewCategory(userID, "Consignado", "#333333", "tag", entity.CategoryTypeIncome)

	uc := NewGetCategoryBreakdownUseCase(
		usecasetest.NewExpenseRepository(),
		usecasetest.NewIncomeRepository(
			entity.NewIncome(userID, "Repasse", decimal.NewFromInt(100), d(2025, 3, 3), &consignment.ID, "pix"),
		),
		usecasetest.NewSaleRepository(
			entity.NewSale(userID, nil, "", "Venda", decimal.NewFromInt(150), d(2025, 3, 4), "pix"),
			entity.NewSale(userID, nil, "", "Venda", decimal.NewFromInt(150), d(2025, 3, 9), "cash"),
		),
		usecasetest.NewCategoryRepository(consignment),
		nil,
		0,
	)

	output, err := uc.Execute(ctx, GetCategoryBreakdownInput{
		UserID:    userID,
		Type:      entity.CategoryTypeIncome,
		StartDate: d(2025, 3, 1),
		EndDate:   d(2025, 3, 31),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Categories) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(output.Categories))
	}
	if output.Categories[0].CategoryID != SalesBucketID || output.Categories[0].Count != 2 {
		t.Errorf("expected sales bucket first with 2 sales, got %+v", output.Categories[0])
	}
	if output.Categories[0].Percentage != 75 {
		t.Errorf("expected 75%%, got %v", output.Categories[0].Percentage)
	}
}

func TestGetCategoryBreakdown_Validation(t *testing.T) {
	uc := NewGetCategoryBreakdownUseCase(nil, nil, nil, nil, nil, 31)

	_, err := uc.Execute(context.Background(), GetCategoryBreakdownInput{Type: "transfer", StartDate: d(2025, 1, 1), EndDate: d(2025, 1, 2)})
	if !errors.Is(err, domainerror.ErrInvalidReportType) {
		t.Errorf("expected ErrInvalidReportType, got %v", err)
	}

	_, err = uc.Execute(context.Background(), GetCategoryBreakdownInput{Type: entity.CategoryTypeIncome, StartDate: d(2025, 2, 1), EndDate: d(2025, 1, 1)})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}

	_, err = uc.Execute(context.Background(), GetCategoryBreakdownInput{Type: entity.CategoryTypeIncome, StartDate: d(2025, 1, 1), EndDate: d(2025, 2, 1)})
	if !errors.Is(err, domainerror.ErrDateRangeTooLarge) {
		t.Errorf("expected ErrDateRangeTooLarge for 32 days, got %v", err)
	}
}

func TestGetMonthlyComparison(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc := NewGetMonthlyComparisonUseCase(
		usecasetest.NewExpenseRepository(
			paidExpense(userID, nil, "300", d(2025, 1, 10)),
			paidExpense(userID, nil, "450", d(2025, 3, 2)),
		),
		usecasetest.NewIncomeRepository(
			entity.NewIncome(userID, "Repasse", decimal.NewFromInt(200), d(2025, 1, 20), nil, "pix"),
		),
		usecasetest.NewSaleRepository(
			entity.NewSale(userID, nil, "", "Venda", decimal.NewFromInt(800), d(2025, 1, 5), "pix"),
			entity.NewSale(userID, nil, "", "Venda", decimal.NewFromInt(500), d(2025, 3, 15), "pix"),
		),
		usecasetest.NewReportCache(),
		0,
	)

	output, err := uc.Execute(ctx, GetMonthlyComparisonInput{
		UserID:    userID,
		StartDate: d(2025, 1, 1),
		EndDate:   d(2025, 3, 31),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(output.Months))
	}
	jan, feb, mar := output.Months[0], output.Months[1], output.Months[2]
	if !jan.Income.Equal(decimal.NewFromInt(1000)) || !jan.Expenses.Equal(decimal.NewFromInt(300)) {
		t.Errorf("unexpected january: %+v", jan)
	}
	if !feb.Income.IsZero() || !feb.Expenses.IsZero() {
		t.Errorf("expected empty february, got %+v", feb)
	}
	if mar.ExpenseChangePercent != nil {
		t.Error("expected nil expense change after an empty month")
	}
	if !output.TotalIncome.Equal(decimal.NewFromInt(1500)) || !output.TotalExpenses.Equal(decimal.NewFromInt(750)) {
		t.Errorf("expected totals 1500/750, got %s/%s", output.TotalIncome, output.TotalExpenses)
	}
	if !output.Net.Equal(decimal.NewFromInt(750)) {
		t.Errorf("expected net 750, got %s", output.Net)
	}
}

func TestGetMonthlyComparison_PropagatesFetchErrors(t *testing.T) {
	incomes := usecasetest.NewIncomeRepository()
	boom := errors.New("connection refused")
	incomes.Fail("List", boom)

	uc := NewGetMonthlyComparisonUseCase(usecasetest.NewExpenseRepository(), incomes, usecasetest.NewSaleRepository(), nil, 0)
	_, err := uc.Execute(context.Background(), GetMonthlyComparisonInput{
		UserID:    uuid.New(),
		StartDate: d(2025, 1, 1),
		EndDate:   d(2025, 1, 31),
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}

func TestGetMonthlyComparison_RangeIsBounded(t *testing.T) {
	tests := []struct {
		name    string
		maxDays int
		end     time.Time
		wantErr bool
	}{
		{name: "within configured bound", maxDays: 90, end: d(2025, 3, 31), wantErr: false},
		{name: "beyond configured bound", maxDays: 59, end: d(2025, 3, 31), wantErr: true},
		{name: "default bound allows a year", maxDays: 0, end: d(2025, 12, 31), wantErr: false},
		{name: "default bound rejects ten years", maxDays: 0, end: d(2034, 12, 31), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGetMonthlyComparisonUseCase(
				usecasetest.NewExpenseRepository(),
				usecasetest.NewIncomeRepository(),
				usecasetest.NewSaleRepository(),
				nil,
				tt.maxDays,
			)
			_, err := uc.Execute(context.Background(), GetMonthlyComparisonInput{
				UserID:    uuid.New(),
				StartDate: d(2025, 1, 1),
				EndDate:   tt.end,
			})
			if tt.wantErr != errors.Is(err, domainerror.ErrDateRangeTooLarge) {
				t.Errorf("expected range error %v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
