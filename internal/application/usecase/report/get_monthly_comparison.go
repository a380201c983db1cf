package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// GetMonthlyComparisonInput represents the input for the monthly comparison.
type GetMonthlyComparisonInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetMonthlyComparisonOutput represents the output of the monthly comparison.
type GetMonthlyComparisonOutput struct {
	StartDate     time.Time               `json:"start_date"`
	EndDate       time.Time               `json:"end_date"`
	TotalIncome   decimal.Decimal         `json:"total_income"`
	TotalExpenses decimal.Decimal         `json:"total_expenses"`
	Net           decimal.Decimal         `json:"net"`
	Months        []MonthlyComparisonItem `json:"months"`
}

// GetMonthlyComparisonUseCase compares income and expenses month over month.
type GetMonthlyComparisonUseCase struct {
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
	saleRepo    adapter.SaleRepository
	cache       adapter.ReportCache
	maxDays     int
}

// NewGetMonthlyComparisonUseCase creates a new GetMonthlyComparisonUseCase instance.
// maxDays bounds the range as in NewGetCategoryBreakdownUseCase.
func NewGetMonthlyComparisonUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	saleRepo adapter.SaleRepository,
	cache adapter.ReportCache,
	maxDays int,
) *GetMonthlyComparisonUseCase {
	if maxDays <= 0 {
		maxDays = cash.DefaultMaxLedgerDays
	}
	return &GetMonthlyComparisonUseCase{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		saleRepo:    saleRepo,
		cache:       cache,
		maxDays:     maxDays,
	}
}

// Execute builds the comparison. Income is incomes plus sales; expenses are
// paid expenses by payment date.
func (uc *GetMonthlyComparisonUseCase) Execute(ctx context.Context, input GetMonthlyComparisonInput) (*GetMonthlyComparisonOutput, error) {
	startDate := entity.Day(input.StartDate)
	endDate := entity.Day(input.EndDate)
	if err := cash.ValidateRange(startDate, endDate, uc.maxDays); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("monthly:%s:%s", startDate.Format(entity.DateLayout), endDate.Format(entity.DateLayout))
	var cached GetMonthlyComparisonOutput
	if readCache(ctx, uc.cache, input.UserID, cacheKey, &cached) {
		return &cached, nil
	}

	var (
		expenses []*entity.Expense
		incomes  []*entity.Income
		sales    []*entity.Sale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = paidExpenses(gctx, uc.expenseRepo, input.UserID, startDate, endDate)
		return err
	})
	g.Go(func() error {
		var err error
		incomes, err = listIncomes(gctx, uc.incomeRepo, input.UserID, startDate, endDate)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = listSales(gctx, uc.saleRepo, input.UserID, startDate, endDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := make(map[string]MonthTotals)
	add := func(date time.Time, income, expense decimal.Decimal) {
		key := monthKey(date)
		t, ok := totals[key]
		if !ok {
			t = MonthTotals{Income: decimal.Zero, Expenses: decimal.Zero}
		}
		t.Income = t.Income.Add(income)
		t.Expenses = t.Expenses.Add(expense)
		totals[key] = t
	}

	for _, e := range expenses {
		if e.PaymentDate != nil {
			add(*e.PaymentDate, decimal.Zero, e.Amount)
		}
	}
	for _, i := range incomes {
		add(i.Date, i.Amount, decimal.Zero)
	}
	for _, s := range sales {
		add(s.SaleDate, s.TotalAmount, decimal.Zero)
	}

	output := &GetMonthlyComparisonOutput{
		StartDate:     startDate,
		EndDate:       endDate,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Months:        CompareMonths(monthSeries(startDate, endDate), totals),
	}
	for _, m := range output.Months {
		output.TotalIncome = output.TotalIncome.Add(m.Income)
		output.TotalExpenses = output.TotalExpenses.Add(m.Expenses)
	}
	output.Net = output.TotalIncome.Sub(output.TotalExpenses)

	writeCache(ctx, uc.cache, input.UserID, cacheKey, output)
	return output, nil
}
