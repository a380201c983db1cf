package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

const (
	// UncategorizedID identifies the bucket of records without a category.
	UncategorizedID = "uncategorized"
	// UncategorizedName is the display name of the uncategorized bucket.
	UncategorizedName = "Sem categoria"
	// UncategorizedColor is the color of the uncategorized bucket.
	UncategorizedColor = "#6B7280"
	// UncategorizedIcon is the icon of the uncategorized bucket.
	UncategorizedIcon = "question-mark"

	// SalesBucketID identifies the bucket of sales in income breakdowns.
	SalesBucketID = "sales"
	// SalesBucketName is the display name of the sales bucket.
	SalesBucketName = "Vendas"
	// SalesBucketColor is the color of the sales bucket.
	SalesBucketColor = "#10B981"
	// SalesBucketIcon is the icon of the sales bucket.
	SalesBucketIcon = "shopping-bag"
)

var hundred = decimal.NewFromInt(100)

// Entry is one amount to aggregate. Bucket overrides the category when set.
type Entry struct {
	CategoryID *uuid.UUID
	Bucket     string
	Amount     decimal.Decimal
}

// CategoryBreakdownItem is a single category of a breakdown.
type CategoryBreakdownItem struct {
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	CategoryColor string          `json:"category_color"`
	CategoryIcon  string          `json:"category_icon"`
	Amount        decimal.Decimal `json:"amount"`
	Count         int             `json:"count"`
	Percentage    float64         `json:"percentage"`
}

// AggregateByCategory groups entries into category buckets. Categories missing
// from the map fall into the uncategorized bucket. Items are ordered by amount
// descending and then by name, so the result does not depend on input order.
func AggregateByCategory(entries []Entry, categories map[uuid.UUID]*entity.Category) ([]CategoryBreakdownItem, decimal.Decimal) {
	buckets := make(map[string]*CategoryBreakdownItem)
	total := decimal.Zero

	for _, e := range entries {
		item := bucketFor(e, categories, buckets)
		item.Amount = item.Amount.Add(e.Amount)
		item.Count++
		total = total.Add(e.Amount)
	}

	items := make([]CategoryBreakdownItem, 0, len(buckets))
	for _, item := range buckets {
		if !total.IsZero() {
			item.Percentage, _ = item.Amount.Mul(hundred).Div(total).Round(2).Float64()
		}
		items = append(items, *item)
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].Amount.Equal(items[j].Amount) {
			return items[i].Amount.GreaterThan(items[j].Amount)
		}
		if items[i].CategoryName != items[j].CategoryName {
			return items[i].CategoryName < items[j].CategoryName
		}
		return items[i].CategoryID < items[j].CategoryID
	})

	return items, total
}

func bucketFor(e Entry, categories map[uuid.UUID]*entity.Category, buckets map[string]*CategoryBreakdownItem) *CategoryBreakdownItem {
	key := UncategorizedID
	switch {
	case e.Bucket != "":
		key = e.Bucket
	case e.CategoryID != nil && categories[*e.CategoryID] != nil:
		key = e.CategoryID.String()
	}

	if item, ok := buckets[key]; ok {
		return item
	}

	item := &CategoryBreakdownItem{
		CategoryID:    key,
		CategoryName:  UncategorizedName,
		CategoryColor: UncategorizedColor,
		CategoryIcon:  UncategorizedIcon,
		Amount:        decimal.Zero,
	}
	switch {
	case key == SalesBucketID:
		item.CategoryName = SalesBucketName
		item.CategoryColor = SalesBucketColor
		item.CategoryIcon = SalesBucketIcon
	case key != UncategorizedID:
		category := categories[*e.CategoryID]
		item.CategoryName = category.Name
		item.CategoryColor = category.Color
		item.CategoryIcon = category.Icon
	}
	buckets[key] = item
	return item
}

// MonthTotals holds the income and expense totals of one month.
type MonthTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthlyComparisonItem is one month of the comparison.
type MonthlyComparisonItem struct {
	Month                string          `json:"month"`
	Label                string          `json:"label"`
	Income               decimal.Decimal `json:"income"`
	Expenses             decimal.Decimal `json:"expenses"`
	Net                  decimal.Decimal `json:"net"`
	IncomeChangePercent  *float64        `json:"income_change_percent"`
	ExpenseChangePercent *float64        `json:"expense_change_percent"`
}

// CompareMonths builds one zero-filled row per month with the change against
// the previous row. The first month has no previous value.
func CompareMonths(months []time.Time, totals map[string]MonthTotals) []MonthlyComparisonItem {
	items := make([]MonthlyComparisonItem, 0, len(months))

	var previous *MonthTotals
	for _, month := range months {
		current, ok := totals[monthKey(month)]
		if !ok {
			current = MonthTotals{Income: decimal.Zero, Expenses: decimal.Zero}
		}

		item := MonthlyComparisonItem{
			Month:    monthKey(month),
			Label:    MonthLabel(month),
			Income:   current.Income,
			Expenses: current.Expenses,
			Net:      current.Income.Sub(current.Expenses),
		}
		if previous != nil {
			item.IncomeChangePercent = changePercent(previous.Income, current.Income)
			item.ExpenseChangePercent = changePercent(previous.Expenses, current.Expenses)
		}

		items = append(items, item)
		snapshot := current
		previous = &snapshot
	}

	return items
}

// changePercent returns (current - previous) / previous * 100, or nil when previous is zero.
func changePercent(previous, current decimal.Decimal) *float64 {
	if previous.IsZero() {
		return nil
	}
	pct, _ := current.Sub(previous).Mul(hundred).Div(previous).Round(2).Float64()
	return &pct
}
