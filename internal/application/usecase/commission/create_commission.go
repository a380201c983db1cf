// Package commission contains the commission lifecycle and settlement use cases.
package commission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

var maxRate = decimal.NewFromInt(100)

// CreateCommissionInput represents the input for commission creation.
type CreateCommissionInput struct {
	UserID uuid.UUID
	SaleID uuid.UUID
	Rate   *decimal.Decimal // Defaults to the seller rate
}

// CreateCommissionOutput represents the output of commission creation.
type CreateCommissionOutput struct {
	Commission *entity.Commission
}

// CreateCommissionUseCase creates the commission of a sale.
type CreateCommissionUseCase struct {
	commissionRepo adapter.CommissionRepository
	saleRepo       adapter.SaleRepository
	sellerRepo     adapter.SellerRepository
}

// NewCreateCommissionUseCase creates a new CreateCommissionUseCase instance.
func NewCreateCommissionUseCase(
	commissionRepo adapter.CommissionRepository,
	saleRepo adapter.SaleRepository,
	sellerRepo adapter.SellerRepository,
) *CreateCommissionUseCase {
	return &CreateCommissionUseCase{
		commissionRepo: commissionRepo,
		saleRepo:       saleRepo,
		sellerRepo:     sellerRepo,
	}
}

// Execute performs the commission creation. A sale has at most one commission.
func (uc *CreateCommissionUseCase) Execute(ctx context.Context, input CreateCommissionInput) (*CreateCommissionOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil && !errors.Is(err, domainerror.ErrSaleNotFound) {
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	if err != nil || sale.UserID != input.UserID {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeSaleNotFound,
			"sale not found",
			domainerror.ErrSaleNotFound,
		)
	}

	if sale.SellerID == nil {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeSaleWithoutSeller,
			"sale has no seller",
			domainerror.ErrSaleWithoutSeller,
		)
	}

	exists, err := uc.commissionRepo.ExistsBySaleID(ctx, sale.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check commission existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeCommissionAlreadyExists,
			"commission already exists for this sale",
			domainerror.ErrCommissionAlreadyExists,
		)
	}

	seller, err := uc.sellerRepo.FindByID(ctx, *sale.SellerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSellerNotFound) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSellerNotFound,
				"seller not found",
				domainerror.ErrSellerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find seller: %w", err)
	}

	rate := seller.CommissionRate
	if input.Rate != nil {
		rate = *input.Rate
	}
	if rate.IsNegative() || rate.GreaterThan(maxRate) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidCommissionRate,
			"commission rate must be between 0 and 100",
			domainerror.ErrInvalidCommissionRate,
		)
	}

	commission := entity.NewCommission(input.UserID, sale.ID, seller.ID, sale.TotalAmount, rate)
	if err := uc.commissionRepo.Create(ctx, commission); err != nil {
		return nil, fmt.Errorf("failed to create commission: %w", err)
	}

	return &CreateCommissionOutput{
		Commission: commission,
	}, nil
}

// findOwned loads a commission and checks it belongs to the user.
func findOwned(ctx context.Context, repo adapter.CommissionRepository, commissionID, userID uuid.UUID) (*entity.Commission, error) {
	commission, err := repo.FindByID(ctx, commissionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCommissionNotFound) {
			return nil, domainerror.NewCommissionError(
				domainerror.ErrCodeCommissionNotFound,
				"commission not found",
				domainerror.ErrCommissionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find commission: %w", err)
	}

	if commission.UserID != userID {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeUnauthorizedCommission,
			"not authorized to access this commission",
			domainerror.ErrUnauthorizedCommissionAccess,
		)
	}

	return commission, nil
}
