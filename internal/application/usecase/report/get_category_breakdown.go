package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	Type      entity.CategoryType
	StartDate time.Time
	EndDate   time.Time
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Type        entity.CategoryType     `json:"type"`
	StartDate   time.Time               `json:"start_date"`
	EndDate     time.Time               `json:"end_date"`
	PeriodLabel string                  `json:"period_label"`
	Total       decimal.Decimal         `json:"total"`
	Categories  []CategoryBreakdownItem `json:"categories"`
}

// GetCategoryBreakdownUseCase groups paid expenses or incomes of a range by category.
type GetCategoryBreakdownUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	incomeRepo   adapter.IncomeRepository
	saleRepo     adapter.SaleRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
	maxDays      int
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
// Ranges longer than maxDays are rejected; maxDays <= 0 uses the ledger default.
func NewGetCategoryBreakdownUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	saleRepo adapter.SaleRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
	maxDays int,
) *GetCategoryBreakdownUseCase {
	if maxDays <= 0 {
		maxDays = cash.DefaultMaxLedgerDays
	}
	return &GetCategoryBreakdownUseCase{
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
		saleRepo:     saleRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		maxDays:      maxDays,
	}
}

// Execute builds the breakdown. Expenses count on their payment date; the
// income breakdown includes sales in their own bucket.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewCashError(
			domainerror.ErrCodeInvalidReportType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidReportType,
		)
	}

	startDate := entity.Day(input.StartDate)
	endDate := entity.Day(input.EndDate)
	if err := cash.ValidateRange(startDate, endDate, uc.maxDays); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("categories:%s:%s:%s", input.Type, startDate.Format(entity.DateLayout), endDate.Format(entity.DateLayout))
	var cached GetCategoryBreakdownOutput
	if readCache(ctx, uc.cache, input.UserID, cacheKey, &cached) {
		return &cached, nil
	}

	var entries []Entry
	var err error
	if input.Type == entity.CategoryTypeExpense {
		entries, err = uc.expenseEntries(ctx, input.UserID, startDate, endDate)
	} else {
		entries, err = uc.incomeEntries(ctx, input.UserID, startDate, endDate)
	}
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoriesOf(ctx, entries)
	if err != nil {
		return nil, err
	}

	items, total := AggregateByCategory(entries, categories)
	output := &GetCategoryBreakdownOutput{
		Type:        input.Type,
		StartDate:   startDate,
		EndDate:     endDate,
		PeriodLabel: PeriodLabel(startDate, endDate),
		Total:       total,
		Categories:  items,
	}

	writeCache(ctx, uc.cache, input.UserID, cacheKey, output)
	return output, nil
}

func (uc *GetCategoryBreakdownUseCase) expenseEntries(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]Entry, error) {
	expenses, err := paidExpenses(ctx, uc.expenseRepo, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, Entry{CategoryID: e.CategoryID, Amount: e.Amount})
	}
	return entries, nil
}

func (uc *GetCategoryBreakdownUseCase) incomeEntries(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]Entry, error) {
	var incomes []*entity.Income
	var sales []*entity.Sale

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = listIncomes(gctx, uc.incomeRepo, userID, startDate, endDate)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = listSales(gctx, uc.saleRepo, userID, startDate, endDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(incomes)+len(sales))
	for _, i := range incomes {
		entries = append(entries, Entry{CategoryID: i.CategoryID, Amount: i.Amount})
	}
	for _, s := range sales {
		entries = append(entries, Entry{Bucket: SalesBucketID, Amount: s.TotalAmount})
	}
	return entries, nil
}

// categoriesOf loads the categories referenced by the entries. Deleted
// categories are absent from the map.
func (uc *GetCategoryBreakdownUseCase) categoriesOf(ctx context.Context, entries []Entry) (map[uuid.UUID]*entity.Category, error) {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, e := range entries {
		if e.CategoryID == nil {
			continue
		}
		if _, ok := seen[*e.CategoryID]; ok {
			continue
		}
		seen[*e.CategoryID] = struct{}{}
		ids = append(ids, *e.CategoryID)
	}

	categories := make(map[uuid.UUID]*entity.Category, len(ids))
	if len(ids) == 0 {
		return categories, nil
	}

	found, err := uc.categoryRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	for _, c := range found {
		categories[c.ID] = c
	}
	return categories, nil
}

func paidExpenses(ctx context.Context, repo adapter.ExpenseRepository, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Expense, error) {
	paid := true
	expenses, err := repo.List(ctx, adapter.ExpenseFilter{
		UserID:    userID,
		StartDate: &startDate,
		EndDate:   &endDate,
		DateField: adapter.ExpenseDatePayment,
		Paid:      &paid,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func listIncomes(ctx context.Context, repo adapter.IncomeRepository, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Income, error) {
	incomes, err := repo.List(ctx, adapter.IncomeFilter{
		UserID:    userID,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

func listSales(ctx context.Context, repo adapter.SaleRepository, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Sale, error) {
	sales, err := repo.List(ctx, adapter.SaleFilter{
		UserID:    userID,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func readCache(ctx context.Context, cache adapter.ReportCache, userID uuid.UUID, key string, dest any) bool {
	if cache == nil {
		return false
	}
	hit, err := cache.Get(ctx, userID, key, dest)
	if err != nil {
		slog.Warn("Failed to read report cache", "user_id", userID, "key", key, "error", err)
		return false
	}
	return hit
}

func writeCache(ctx context.Context, cache adapter.ReportCache, userID uuid.UUID, key string, value any) {
	if cache == nil {
		return
	}
	if err := cache.Set(ctx, userID, key, value); err != nil {
		slog.Warn("Failed to write report cache", "user_id", userID, "key", key, "error", err)
	}
}
