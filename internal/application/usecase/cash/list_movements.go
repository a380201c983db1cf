package cash

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// ListMovementsInput represents the input for listing the movements of a day.
type ListMovementsInput struct {
	UserID uuid.UUID
	Date   time.Time
}

// ListMovementsOutput represents the output of listing movements.
type ListMovementsOutput struct {
	Movements []*entity.CashMovement
}

// ListMovementsUseCase lists the cash movements of one day.
type ListMovementsUseCase struct {
	cashRepo adapter.CashRepository
}

// NewListMovementsUseCase creates a new ListMovementsUseCase instance.
func NewListMovementsUseCase(cashRepo adapter.CashRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{
		cashRepo: cashRepo,
	}
}

// Execute retrieves the movements booked on the given day.
func (uc *ListMovementsUseCase) Execute(ctx context.Context, input ListMovementsInput) (*ListMovementsOutput, error) {
	if input.Date.IsZero() {
		return nil, ValidateRange(input.Date, input.Date, 0)
	}
	day := entity.Day(input.Date)

	movements, err := uc.cashRepo.ListMovements(ctx, input.UserID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash movements: %w", err)
	}

	return &ListMovementsOutput{
		Movements: movements,
	}, nil
}
