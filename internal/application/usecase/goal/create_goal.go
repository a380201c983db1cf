package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Period       *entity.GoalPeriod // Optional, defaults to monthly
	Metric       *entity.GoalMetric // Optional, defaults to sales
	SellerID     *uuid.UUID
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo   adapter.GoalRepository
	sellerRepo adapter.SellerRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, sellerRepo adapter.SellerRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:   goalRepo,
		sellerRepo: sellerRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal name is required",
			nil,
		)
	}

	// Validate target amount
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	// Apply defaults
	period := entity.GoalPeriodMonthly
	if input.Period != nil {
		if !input.Period.IsValid() {
			return nil, invalidPeriod()
		}
		period = *input.Period
	}

	metric := entity.GoalMetricSales
	if input.Metric != nil {
		if !input.Metric.IsValid() {
			return nil, invalidMetric()
		}
		metric = *input.Metric
	}

	if input.SellerID != nil && metric != entity.GoalMetricSales {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalMetric,
			"only sales goals can target a seller",
			domainerror.ErrInvalidGoalMetric,
		)
	}
	if err := checkSeller(ctx, uc.sellerRepo, input.UserID, input.SellerID); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(input.UserID, name, input.TargetAmount.Round(2), period, metric, input.SellerID)
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

func invalidPeriod() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeInvalidGoalPeriod,
		"period must be 'monthly', 'weekly', or 'yearly'",
		domainerror.ErrInvalidGoalPeriod,
	)
}

func invalidMetric() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeInvalidGoalMetric,
		"metric must be 'sales' or 'income'",
		domainerror.ErrInvalidGoalMetric,
	)
}
