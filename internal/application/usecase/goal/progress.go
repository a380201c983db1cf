// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

var hundred = decimal.NewFromInt(100)

// progressCalculator sums the goal metric over the period containing a reference day.
type progressCalculator struct {
	saleRepo   adapter.SaleRepository
	incomeRepo adapter.IncomeRepository
	now        func() time.Time
}

func newProgressCalculator(saleRepo adapter.SaleRepository, incomeRepo adapter.IncomeRepository) progressCalculator {
	return progressCalculator{
		saleRepo:   saleRepo,
		incomeRepo: incomeRepo,
		now:        entity.Today,
	}
}

func (p progressCalculator) progress(ctx context.Context, goal *entity.Goal) (*entity.GoalProgress, error) {
	start, end := goal.Period.PeriodBounds(p.now())

	var current decimal.Decimal
	var err error
	switch goal.Metric {
	case entity.GoalMetricIncome:
		current, err = p.incomeRepo.SumBetween(ctx, goal.UserID, start, end)
	default:
		current, err = p.saleRepo.SumBetween(ctx, goal.UserID, goal.SellerID, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compute goal progress: %w", err)
	}

	var percentage float64
	if goal.TargetAmount.IsPositive() {
		percentage, _ = current.Mul(hundred).Div(goal.TargetAmount).Round(2).Float64()
	}

	return &entity.GoalProgress{
		Goal:          goal,
		PeriodStart:   start,
		PeriodEnd:     end,
		CurrentAmount: current,
		Percentage:    percentage,
		Achieved:      current.GreaterThanOrEqual(goal.TargetAmount),
	}, nil
}

// findOwned loads a goal and checks it belongs to the user.
func findOwned(ctx context.Context, repo adapter.GoalRepository, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return goal, nil
}

// checkSeller verifies an optional seller belongs to the user.
func checkSeller(ctx context.Context, repo adapter.SellerRepository, userID uuid.UUID, sellerID *uuid.UUID) error {
	if sellerID == nil {
		return nil
	}
	seller, err := repo.FindByID(ctx, *sellerID)
	if err != nil && !errors.Is(err, domainerror.ErrSellerNotFound) {
		return fmt.Errorf("failed to find seller: %w", err)
	}
	if err != nil || seller.UserID != userID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalSellerNotFound,
			"seller not found",
			domainerror.ErrGoalSellerNotFound,
		)
	}
	return nil
}
