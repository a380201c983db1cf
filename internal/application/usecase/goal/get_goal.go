package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// GetGoalInput represents the input for fetching a goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of fetching a goal.
type GetGoalOutput struct {
	Goal *entity.GoalProgress
}

// GetGoalUseCase fetches a goal with its progress.
type GetGoalUseCase struct {
	goalRepo   adapter.GoalRepository
	calculator progressCalculator
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(
	goalRepo adapter.GoalRepository,
	saleRepo adapter.SaleRepository,
	incomeRepo adapter.IncomeRepository,
) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:   goalRepo,
		calculator: newProgressCalculator(saleRepo, incomeRepo),
	}
}

// Execute fetches the goal.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := findOwned(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	progress, err := uc.calculator.progress(ctx, goal)
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal: progress,
	}, nil
}
