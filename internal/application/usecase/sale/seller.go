// Package sale contains seller and sale use cases.
package sale

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// MaxSellerNameLength is the maximum allowed length for seller names.
const MaxSellerNameLength = 100

var maxCommissionRate = decimal.NewFromInt(100)

// CreateSellerInput represents the input for seller creation.
type CreateSellerInput struct {
	UserID         uuid.UUID
	Name           string
	Email          string
	CommissionRate decimal.Decimal
}

// CreateSellerOutput represents the output of seller creation.
type CreateSellerOutput struct {
	Seller *entity.Seller
}

// CreateSellerUseCase handles seller creation logic.
type CreateSellerUseCase struct {
	sellerRepo adapter.SellerRepository
}

// NewCreateSellerUseCase creates a new CreateSellerUseCase instance.
func NewCreateSellerUseCase(sellerRepo adapter.SellerRepository) *CreateSellerUseCase {
	return &CreateSellerUseCase{
		sellerRepo: sellerRepo,
	}
}

// Execute performs the seller creation.
func (uc *CreateSellerUseCase) Execute(ctx context.Context, input CreateSellerInput) (*CreateSellerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateSellerName(name); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(input.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateRate(input.CommissionRate); err != nil {
		return nil, err
	}

	seller := entity.NewSeller(input.UserID, name, email, input.CommissionRate)
	if err := uc.sellerRepo.Create(ctx, seller); err != nil {
		return nil, fmt.Errorf("failed to create seller: %w", err)
	}

	return &CreateSellerOutput{
		Seller: seller,
	}, nil
}

// ListSellersInput represents the input for listing sellers.
type ListSellersInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListSellersOutput represents the output of listing sellers.
type ListSellersOutput struct {
	Sellers []*entity.Seller
}

// ListSellersUseCase handles seller listing logic.
type ListSellersUseCase struct {
	sellerRepo adapter.SellerRepository
}

// NewListSellersUseCase creates a new ListSellersUseCase instance.
func NewListSellersUseCase(sellerRepo adapter.SellerRepository) *ListSellersUseCase {
	return &ListSellersUseCase{
		sellerRepo: sellerRepo,
	}
}

// Execute performs the seller listing.
func (uc *ListSellersUseCase) Execute(ctx context.Context, input ListSellersInput) (*ListSellersOutput, error) {
	sellers, err := uc.sellerRepo.FindByUser(ctx, input.UserID, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	return &ListSellersOutput{
		Sellers: sellers,
	}, nil
}

// UpdateSellerInput represents the input for seller update.
type UpdateSellerInput struct {
	SellerID       uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Email          *string
	CommissionRate *decimal.Decimal
	Active         *bool
}

// UpdateSellerOutput represents the output of seller update.
type UpdateSellerOutput struct {
	Seller *entity.Seller
}

// UpdateSellerUseCase handles seller update logic.
// A new rate applies to commissions created afterwards only.
type UpdateSellerUseCase struct {
	sellerRepo adapter.SellerRepository
}

// NewUpdateSellerUseCase creates a new UpdateSellerUseCase instance.
func NewUpdateSellerUseCase(sellerRepo adapter.SellerRepository) *UpdateSellerUseCase {
	return &UpdateSellerUseCase{
		sellerRepo: sellerRepo,
	}
}

// Execute performs the seller update.
func (uc *UpdateSellerUseCase) Execute(ctx context.Context, input UpdateSellerInput) (*UpdateSellerOutput, error) {
	seller, err := FindOwnedSeller(ctx, uc.sellerRepo, input.SellerID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateSellerName(name); err != nil {
			return nil, err
		}
		seller.Name = name
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		seller.Email = email
	}
	if input.CommissionRate != nil {
		if err := validateRate(*input.CommissionRate); err != nil {
			return nil, err
		}
		seller.CommissionRate = *input.CommissionRate
	}
	if input.Active != nil {
		seller.Active = *input.Active
	}

	seller.UpdatedAt = time.Now().UTC()
	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return nil, fmt.Errorf("failed to update seller: %w", err)
	}

	return &UpdateSellerOutput{
		Seller: seller,
	}, nil
}

// FindOwnedSeller loads a seller and checks it belongs to the user.
func FindOwnedSeller(ctx context.Context, repo adapter.SellerRepository, sellerID, userID uuid.UUID) (*entity.Seller, error) {
	seller, err := repo.FindByID(ctx, sellerID)
	if err != nil && !errors.Is(err, domainerror.ErrSellerNotFound) {
		return nil, fmt.Errorf("failed to find seller: %w", err)
	}
	if err != nil || seller.UserID != userID {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeSellerNotFound,
			"seller not found",
			domainerror.ErrSellerNotFound,
		)
	}
	return seller, nil
}

func validateSellerName(name string) error {
	if name == "" {
		return domainerror.NewSaleError(
			domainerror.ErrCodeMissingSaleFields,
			"seller name is required",
			nil,
		)
	}
	if len([]rune(name)) > MaxSellerNameLength {
		return domainerror.NewSaleError(
			domainerror.ErrCodeMissingSaleFields,
			fmt.Sprintf("seller name must not exceed %d characters", MaxSellerNameLength),
			nil,
		)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domainerror.NewSaleError(
			domainerror.ErrCodeMissingSaleFields,
			"seller email is invalid",
			err,
		)
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxCommissionRate) {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidCommissionRate,
			"commission rate must be between 0 and 100",
			domainerror.ErrInvalidCommissionRate,
		)
	}
	return nil
}
