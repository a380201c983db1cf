package commission

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		reverse  bool
		from     entity.CommissionStatus
		expected entity.CommissionStatus
		err      error
	}{
		{name: "approve pending", from: entity.CommissionStatusPending, expected: entity.CommissionStatusApproved},
		{name: "approve approved", from: entity.CommissionStatusApproved, err: domainerror.ErrInvalidCommissionTransition},
		{name: "approve paid", from: entity.CommissionStatusPaid, err: domainerror.ErrCommissionAlreadyPaid},
		{name: "reverse pending", reverse: true, from: entity.CommissionStatusPending, expected: entity.CommissionStatusReversed},
		{name: "reverse approved", reverse: true, from: entity.CommissionStatusApproved, expected: entity.CommissionStatusReversed},
		{name: "reverse paid", reverse: true, from: entity.CommissionStatusPaid, err: domainerror.ErrCommissionAlreadyPaid},
		{name: "reverse reversed", reverse: true, from: entity.CommissionStatusReversed, err: domainerror.ErrCommissionReversed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			commission := entity.NewCommission(userID, uuid.New(), uuid.New(), decimal.NewFromInt(100), decimal.NewFromInt(5))
			commission.Status = tt.from
			repo := usecasetest.NewCommissionRepository(commission)

			uc := NewApproveCommissionUseCase(repo)
			if tt.reverse {
				uc = NewReverseCommissionUseCase(repo)
			}

			output, err := uc.Execute(context.Background(), TransitionInput{
				CommissionID: commission.ID,
				UserID:       userID,
			})
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				stored, _ := repo.FindByID(context.Background(), commission.ID)
				if stored.Status != tt.from {
					t.Errorf("expected status to stay %s, got %s", tt.from, stored.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Commission.Status != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, output.Commission.Status)
			}
		})
	}
}

func TestCreateCommission(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	seller := entity.NewSeller(userID, "Marina", "", decimal.NewFromInt(12))
	sale := entity.NewSale(userID, &seller.ID, "", "Vestido", decimal.RequireFromString("89.90"), entity.Today(), "pix")
	noSeller := entity.NewSale(userID, nil, "", "Bolsa", decimal.NewFromInt(40), entity.Today(), "pix")

	commissions := usecasetest.NewCommissionRepository()
	uc := NewCreateCommissionUseCase(commissions, usecasetest.NewSaleRepository(sale, noSeller), usecasetest.NewSellerRepository(seller))

	output, err := uc.Execute(ctx, CreateCommissionInput{UserID: userID, SaleID: sale.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 89.90 * 12 / 100 = 10.788
	if !output.Commission.Amount.Equal(decimal.RequireFromString("10.79")) {
		t.Errorf("expected 10.79, got %s", output.Commission.Amount)
	}
	if output.Commission.Status != entity.CommissionStatusPending {
		t.Errorf("expected pending, got %s", output.Commission.Status)
	}

	t.Run("one commission per sale", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCommissionInput{UserID: userID, SaleID: sale.ID})
		if !errors.Is(err, domainerror.ErrCommissionAlreadyExists) {
			t.Errorf("expected ErrCommissionAlreadyExists, got %v", err)
		}
	})

	t.Run("sale without seller", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCommissionInput{UserID: userID, SaleID: noSeller.ID})
		if !errors.Is(err, domainerror.ErrSaleWithoutSeller) {
			t.Errorf("expected ErrSaleWithoutSeller, got %v", err)
		}
	})

	t.Run("rate out of bounds", func(t *testing.T) {
		other := entity.NewSale(userID, &seller.ID, "", "Casaco", decimal.NewFromInt(10), entity.Today(), "pix")
		uc := NewCreateCommissionUseCase(commissions, usecasetest.NewSaleRepository(other), usecasetest.NewSellerRepository(seller))
		rate := decimal.NewFromInt(101)
		_, err := uc.Execute(ctx, CreateCommissionInput{UserID: userID, SaleID: other.ID, Rate: &rate})
		if !errors.Is(err, domainerror.ErrInvalidCommissionRate) {
			t.Errorf("expected ErrInvalidCommissionRate, got %v", err)
		}
	})
}
