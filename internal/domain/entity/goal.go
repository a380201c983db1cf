package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalPeriod represents the period type for a goal.
type GoalPeriod string

const (
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// GoalMetric selects what a goal measures.
type GoalMetric string

const (
	GoalMetricSales  GoalMetric = "sales"
	GoalMetricIncome GoalMetric = "income"
)

// Goal is a revenue target for a period, optionally for a single seller.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Period       GoalPeriod
	Metric       GoalMetric
	SellerID     *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, name string, target decimal.Decimal, period GoalPeriod, metric GoalMetric, sellerID *uuid.UUID) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: target,
		Period:       period,
		Metric:       metric,
		SellerID:     sellerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PeriodBounds returns the first and last day of the goal period containing date.
// Weeks start on Monday.
func (p GoalPeriod) PeriodBounds(date time.Time) (time.Time, time.Time) {
	day := Day(date)
	switch p {
	case GoalPeriodWeekly:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := day.AddDate(0, 0, -(weekday - 1))
		return start, start.AddDate(0, 0, 6)
	case GoalPeriodYearly:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, -1)
	default:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	}
}

// IsValid reports whether the period is known.
func (p GoalPeriod) IsValid() bool {
	return p == GoalPeriodMonthly || p == GoalPeriodWeekly || p == GoalPeriodYearly
}

// IsValid reports whether the metric is known.
func (m GoalMetric) IsValid() bool {
	return m == GoalMetricSales || m == GoalMetricIncome
}

// GoalProgress is a goal with its progress in the current period.
type GoalProgress struct {
	Goal          *Goal
	PeriodStart   time.Time
	PeriodEnd     time.Time
	CurrentAmount decimal.Decimal
	Percentage    float64
	Achieved      bool
}
