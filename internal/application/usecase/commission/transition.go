package commission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// TransitionInput represents the input for approving or reversing a commission.
type TransitionInput struct {
	CommissionID uuid.UUID
	UserID       uuid.UUID
}

// TransitionOutput represents the output of a status change.
type TransitionOutput struct {
	Commission *entity.Commission
}

// allowedFrom lists the statuses each target can be reached from outside settlement.
var allowedFrom = map[entity.CommissionStatus][]entity.CommissionStatus{
	entity.CommissionStatusApproved: {entity.CommissionStatusPending},
	entity.CommissionStatusReversed: {entity.CommissionStatusPending, entity.CommissionStatusApproved},
}

// TransitionUseCase moves a commission to approved or reversed.
type TransitionUseCase struct {
	commissionRepo adapter.CommissionRepository
	target         entity.CommissionStatus
}

// NewApproveCommissionUseCase creates a use case for pending -> approved.
func NewApproveCommissionUseCase(commissionRepo adapter.CommissionRepository) *TransitionUseCase {
	return &TransitionUseCase{
		commissionRepo: commissionRepo,
		target:         entity.CommissionStatusApproved,
	}
}

// NewReverseCommissionUseCase creates a use case for pending|approved -> reversed.
func NewReverseCommissionUseCase(commissionRepo adapter.CommissionRepository) *TransitionUseCase {
	return &TransitionUseCase{
		commissionRepo: commissionRepo,
		target:         entity.CommissionStatusReversed,
	}
}

// Execute performs the status change.
func (uc *TransitionUseCase) Execute(ctx context.Context, input TransitionInput) (*TransitionOutput, error) {
	commission, err := findOwned(ctx, uc.commissionRepo, input.CommissionID, input.UserID)
	if err != nil {
		return nil, err
	}

	switch commission.Status {
	case entity.CommissionStatusPaid:
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeCommissionAlreadyPaid,
			"commission is already paid",
			domainerror.ErrCommissionAlreadyPaid,
		)
	case entity.CommissionStatusReversed:
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeCommissionReversed,
			"commission is reversed",
			domainerror.ErrCommissionReversed,
		)
	}

	if !canTransition(commission.Status, uc.target) {
		return nil, invalidTransition(commission.Status, uc.target)
	}

	from := commission.Status
	commission.Status = uc.target
	commission.UpdatedAt = time.Now().UTC()

	changed, err := uc.commissionRepo.UpdateStatus(ctx, commission, from)
	if err != nil {
		return nil, fmt.Errorf("failed to update commission status: %w", err)
	}
	if !changed {
		return nil, invalidTransition(from, uc.target)
	}

	return &TransitionOutput{
		Commission: commission,
	}, nil
}

func canTransition(from, to entity.CommissionStatus) bool {
	for _, allowed := range allowedFrom[to] {
		if allowed == from {
			return true
		}
	}
	return false
}

func invalidTransition(from, to entity.CommissionStatus) error {
	return domainerror.NewCommissionError(
		domainerror.ErrCodeInvalidTransition,
		fmt.Sprintf("cannot change commission from %s to %s", from, to),
		domainerror.ErrInvalidCommissionTransition,
	)
}
