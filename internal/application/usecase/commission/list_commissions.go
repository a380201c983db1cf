package commission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// ListCommissionsInput represents the input for listing commissions.
type ListCommissionsInput struct {
	UserID   uuid.UUID
	Status   *entity.CommissionStatus
	SellerID *uuid.UUID
}

// ListCommissionsOutput represents the output of listing commissions.
type ListCommissionsOutput struct {
	Commissions []*entity.Commission
}

// ListCommissionsUseCase handles commission listing logic.
type ListCommissionsUseCase struct {
	commissionRepo adapter.CommissionRepository
}

// NewListCommissionsUseCase creates a new ListCommissionsUseCase instance.
func NewListCommissionsUseCase(commissionRepo adapter.CommissionRepository) *ListCommissionsUseCase {
	return &ListCommissionsUseCase{
		commissionRepo: commissionRepo,
	}
}

// Execute performs the commission listing.
func (uc *ListCommissionsUseCase) Execute(ctx context.Context, input ListCommissionsInput) (*ListCommissionsOutput, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeMissingCommissionFields,
			"status must be 'pending', 'approved', 'paid' or 'reversed'",
			nil,
		)
	}

	commissions, err := uc.commissionRepo.List(ctx, adapter.CommissionFilter{
		UserID:   input.UserID,
		Status:   input.Status,
		SellerID: input.SellerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	return &ListCommissionsOutput{
		Commissions: commissions,
	}, nil
}
