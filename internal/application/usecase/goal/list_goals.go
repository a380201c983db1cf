package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID   uuid.UUID
	Metric   *entity.GoalMetric
	SellerID *uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.GoalProgress
}

// ListGoalsUseCase lists goals with their progress in the current period.
type ListGoalsUseCase struct {
	goalRepo   adapter.GoalRepository
	calculator progressCalculator
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	saleRepo adapter.SaleRepository,
	incomeRepo adapter.IncomeRepository,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:   goalRepo,
		calculator: newProgressCalculator(saleRepo, incomeRepo),
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if input.Metric != nil && !input.Metric.IsValid() {
		return nil, invalidMetric()
	}

	goals, err := uc.goalRepo.List(ctx, adapter.GoalFilter{
		UserID:   input.UserID,
		Metric:   input.Metric,
		SellerID: input.SellerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalsOutput{
		Goals: make([]*entity.GoalProgress, 0, len(goals)),
	}
	for _, g := range goals {
		progress, err := uc.calculator.progress(ctx, g)
		if err != nil {
			return nil, err
		}
		output.Goals = append(output.Goals, progress)
	}

	return output, nil
}
