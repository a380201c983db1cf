package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

func TestAggregateByCategory_IndependentOfInputOrder(t *testing.T) {
	userID := uuid.New()
	rent := entity.NewCategory(userID, "Aluguel", "#111111", "home", entity.CategoryTypeExpense)
	stock := entity.NewCategory(userID, "Estoque", "#222222", "box", entity.CategoryTypeExpense)
	categories := map[uuid.UUID]*entity.Category{rent.ID: rent, stock.ID: stock}
	deleted := uuid.New()

	entries := []Entry{
		{CategoryID: &rent.ID, Amount: decimal.RequireFromString("1200.00")},
		{CategoryID: &stock.ID, Amount: decimal.RequireFromString("310.40")},
		{CategoryID: &stock.ID, Amount: decimal.RequireFromString("89.60")},
		{CategoryID: nil, Amount: decimal.RequireFromString("33.33")},
		{CategoryID: &deleted, Amount: decimal.RequireFromString("66.67")},
	}

	baseline, baselineTotal := AggregateByCategory(entries, categories)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]Entry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		items, total := AggregateByCategory(shuffled, categories)
		if !total.Equal(baselineTotal) {
			t.Fatalf("shuffle %d: expected total %s, got %s", i, baselineTotal, total)
		}
		if len(items) != len(baseline) {
			t.Fatalf("shuffle %d: expected %d items, got %d", i, len(baseline), len(items))
		}
		for j := range items {
			if items[j].CategoryID != baseline[j].CategoryID || !items[j].Amount.Equal(baseline[j].Amount) ||
				items[j].Count != baseline[j].Count || items[j].Percentage != baseline[j].Percentage {
				t.Fatalf("shuffle %d: item %d differs: %+v vs %+v", i, j, items[j], baseline[j])
			}
		}
	}

	if !baselineTotal.Equal(decimal.RequireFromString("1700")) {
		t.Errorf("expected total 1700, got %s", baselineTotal)
	}

	expected := []struct {
		name       string
		amount     string
		count      int
		percentage float64
	}{
		{"Aluguel", "1200", 1, 70.59},
		{"Estoque", "400", 2, 23.53},
		{UncategorizedName, "100", 2, 5.88},
	}
	if len(baseline) != len(expected) {
		t.Fatalf("expected %d items, got %d", len(expected), len(baseline))
	}
	for i, e := range expected {
		item := baseline[i]
		if item.CategoryName != e.name || !item.Amount.Equal(decimal.RequireFromString(e.amount)) ||
			item.Count != e.count || item.Percentage != e.percentage {
			t.Errorf("item %d: expected %s %s x%d %.2f%%, got %s %s x%d %.2f%%",
				i, e.name, e.amount, e.count, e.percentage,
				item.CategoryName, item.Amount, item.Count, item.Percentage)
		}
	}
}

func TestAggregateByCategory_TiesOrderedByName(t *testing.T) {
	userID := uuid.New()
	b := entity.NewCategory(userID, "Brechó", "#111111", "tag", entity.CategoryTypeIncome)
	a := entity.NewCategory(userID, "Aluguel de araras", "#222222", "tag", entity.CategoryTypeIncome)
	categories := map[uuid.UUID]*entity.Category{a.ID: a, b.ID: b}

	items, _ := AggregateByCategory([]Entry{
		{CategoryID: &b.ID, Amount: decimal.NewFromInt(50)},
		{Bucket: SalesBucketID, Amount: decimal.NewFromInt(50)},
		{CategoryID: &a.ID, Amount: decimal.NewFromInt(50)},
	}, categories)

	names := []string{items[0].CategoryName, items[1].CategoryName, items[2].CategoryName}
	want := []string{"Aluguel de araras", "Brechó", SalesBucketName}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestAggregateByCategory_Empty(t *testing.T) {
	items, total := AggregateByCategory(nil, nil)
	if len(items) != 0 || !total.IsZero() {
		t.Errorf("expected empty breakdown, got %d items and %s", len(items), total)
	}
}

func TestCompareMonths(t *testing.T) {
	months := monthSeries(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC))
	totals := map[string]MonthTotals{
		"2025-01": {Income: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(400)},
		"2025-03": {Income: decimal.NewFromInt(500), Expenses: decimal.NewFromInt(600)},
		"2025-04": {Income: decimal.NewFromInt(750), Expenses: decimal.NewFromInt(300)},
	}

	items := CompareMonths(months, totals)
	if len(items) != 4 {
		t.Fatalf("expected 4 months, got %d", len(items))
	}

	if items[0].IncomeChangePercent != nil || items[0].ExpenseChangePercent != nil {
		t.Error("expected no change for the first month")
	}
	if items[1].Label != "Fev 2025" || !items[1].Income.IsZero() || !items[1].Net.IsZero() {
		t.Errorf("expected zero-filled Fev 2025, got %+v", items[1])
	}
	if items[1].IncomeChangePercent == nil || *items[1].IncomeChangePercent != -100 {
		t.Errorf("expected -100%% income change, got %v", items[1].IncomeChangePercent)
	}
	if items[2].IncomeChangePercent != nil {
		t.Error("expected nil change after an empty month")
	}
	if !items[2].Net.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("expected net -100, got %s", items[2].Net)
	}
	if items[3].IncomeChangePercent == nil || *items[3].IncomeChangePercent != 50 {
		t.Errorf("expected +50%% income change, got %v", items[3].IncomeChangePercent)
	}
	if items[3].ExpenseChangePercent == nil || *items[3].ExpenseChangePercent != -50 {
		t.Errorf("expected -50%% expense change, got %v", items[3].ExpenseChangePercent)
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		start, end time.Time
		expected   string
	}{
		{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), "Mar 2025"},
		{time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), "T2 2025"},
		{time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), "Nov 2024 - Fev 2025"},
	}
	for _, tt := range tests {
		if got := PeriodLabel(tt.start, tt.end); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}
