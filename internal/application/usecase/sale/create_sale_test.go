package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestCreateSale(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	saleDate := time.Date(2025, time.March, 8, 14, 0, 0, 0, time.UTC)

	commissioned := entity.NewSeller(userID, "Marina", "", decimal.NewFromInt(10))
	volunteer := entity.NewSeller(userID, "Bia", "", decimal.Zero)
	inactive := entity.NewSeller(userID, "Lia", "", decimal.NewFromInt(10))
	inactive.Active = false

	tests := []struct {
		name           string
		sellerID       *uuid.UUID
		wantCommission string
		err            error
	}{
		{name: "without seller"},
		{name: "with commissioned seller", sellerID: &commissioned.ID, wantCommission: "12.50"},
		{name: "with zero rate seller", sellerID: &volunteer.ID},
		{name: "with inactive seller", sellerID: &inactive.ID, err: domainerror.ErrSellerInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := usecasetest.NewSaleRepository()
			commissions := usecasetest.NewCommissionRepository()
			cashRepo := usecasetest.NewCashRepository()
			uc := NewCreateSaleUseCase(
				sales,
				usecasetest.NewSellerRepository(commissioned, volunteer, inactive),
				usecasetest.NewCustomerRepository(),
				usecasetest.NewProductRepository(),
				commissions,
				cash.NewBook(cashRepo, nil),
			)

			output, err := uc.Execute(ctx, CreateSaleInput{
				UserID:        userID,
				SellerID:      tt.sellerID,
				TotalAmount:   decimal.NewFromInt(125),
				SaleDate:      saleDate,
				PaymentMethod: "pix",
			})
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				if sales.Count() != 0 {
					t.Error("expected no sale stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if output.Sale.Description != "Venda" {
				t.Errorf("expected default description, got %q", output.Sale.Description)
			}
			movements := cashRepo.Movements(userID)
			if len(movements) != 1 || movements[0].Direction != entity.MovementInflow || *movements[0].SaleID != output.Sale.ID {
				t.Fatalf("expected one inflow linked to the sale, got %+v", movements)
			}
			if !movements[0].Date.Equal(entity.Day(saleDate)) {
				t.Errorf("expected movement on the sale date, got %s", movements[0].Date)
			}

			if tt.wantCommission == "" {
				if output.Commission != nil {
					t.Errorf("expected no commission, got %+v", output.Commission)
				}
				return
			}
			if output.Commission == nil {
				t.Fatal("expected a commission")
			}
			if output.Commission.Status != entity.CommissionStatusPending || !output.Commission.Amount.Equal(decimal.RequireFromString(tt.wantCommission)) {
				t.Errorf("expected pending commission of %s, got %s %s", tt.wantCommission, output.Commission.Status, output.Commission.Amount)
			}
		})
	}
}

func TestCreateSale_MovementFailureRemovesSale(t *testing.T) {
	sales := usecasetest.NewSaleRepository()
	cashRepo := usecasetest.NewCashRepository()
	cashRepo.Fail("CreateMovement", errors.New("timeout"))

	uc := NewCreateSaleUseCase(sales, usecasetest.NewSellerRepository(), usecasetest.NewCustomerRepository(), usecasetest.NewProductRepository(), usecasetest.NewCommissionRepository(), cash.NewBook(cashRepo, nil))
	_, err := uc.Execute(context.Background(), CreateSaleInput{
		UserID:      uuid.New(),
		TotalAmount: decimal.NewFromInt(10),
		SaleDate:    time.Now(),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if sales.Count() != 0 {
		t.Errorf("expected sale removed, got %d", sales.Count())
	}
}

func TestCreateSale_RejectsNonPositiveAmount(t *testing.T) {
	uc := NewCreateSaleUseCase(usecasetest.NewSaleRepository(), usecasetest.NewSellerRepository(), usecasetest.NewCustomerRepository(), usecasetest.NewProductRepository(), usecasetest.NewCommissionRepository(), cash.NewBook(usecasetest.NewCashRepository(), nil))
	_, err := uc.Execute(context.Background(), CreateSaleInput{
		UserID:      uuid.New(),
		TotalAmount: decimal.NewFromInt(-5),
		SaleDate:    time.Now(),
	})
	if !errors.Is(err, domainerror.ErrInvalidSaleAmount) {
		t.Errorf("expected ErrInvalidSaleAmount, got %v", err)
	}
}

func TestCreateSale_LinksCustomer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	customer := entity.NewCustomer(userID, "Ana Souza", "ana@example.com", "")
	foreign := entity.NewCustomer(uuid.New(), "Outra", "", "")
	customers := usecasetest.NewCustomerRepository(customer, foreign)

	newUseCase := func(sales *usecasetest.SaleRepository) *CreateSaleUseCase {
		return NewCreateSaleUseCase(sales, usecasetest.NewSellerRepository(), customers, usecasetest.NewProductRepository(),
			usecasetest.NewCommissionRepository(), cash.NewBook(usecasetest.NewCashRepository(), nil))
	}

	output, err := newUseCase(usecasetest.NewSaleRepository()).Execute(ctx, CreateSaleInput{
		UserID:      userID,
		CustomerID:  &customer.ID,
		TotalAmount: decimal.NewFromInt(60),
		SaleDate:    time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Sale.CustomerName != "Ana Souza" || output.Sale.CustomerID == nil || *output.Sale.CustomerID != customer.ID {
		t.Errorf("expected sale linked to Ana Souza, got %q %v", output.Sale.CustomerName, output.Sale.CustomerID)
	}

	named, err := newUseCase(usecasetest.NewSaleRepository()).Execute(ctx, CreateSaleInput{
		UserID:       userID,
		CustomerID:   &customer.ID,
		CustomerName: "Ana (presente)",
		TotalAmount:  decimal.NewFromInt(60),
		SaleDate:     time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if named.Sale.CustomerName != "Ana (presente)" {
		t.Errorf("expected explicit customer name kept, got %q", named.Sale.CustomerName)
	}

	sales := usecasetest.NewSaleRepository()
	_, err = newUseCase(sales).Execute(ctx, CreateSaleInput{
		UserID:      userID,
		CustomerID:  &foreign.ID,
		TotalAmount: decimal.NewFromInt(60),
		SaleDate:    time.Now(),
	})
	if !errors.Is(err, domainerror.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if sales.Count() != 0 {
		t.Errorf("expected no sale stored, got %d", sales.Count())
	}
}

func TestCreateSale_MarksProductSold(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	saleDate := time.Date(2025, time.March, 8, 14, 0, 0, 0, time.UTC)
	product := entity.NewProduct(userID, "Jaqueta jeans", decimal.NewFromInt(80), decimal.NewFromInt(30), saleDate)
	products := usecasetest.NewProductRepository(product)
	sales := usecasetest.NewSaleRepository()
	cashRepo := usecasetest.NewCashRepository()
	uc := NewCreateSaleUseCase(sales, usecasetest.NewSellerRepository(), usecasetest.NewCustomerRepository(), products,
		usecasetest.NewCommissionRepository(), cash.NewBook(cashRepo, nil))

	output, err := uc.Execute(ctx, CreateSaleInput{
		UserID:      userID,
		ProductID:   &product.ID,
		TotalAmount: decimal.NewFromInt(80),
		SaleDate:    saleDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Sale.Description != "Jaqueta jeans" {
		t.Errorf("expected description from product, got %q", output.Sale.Description)
	}

	stored, _ := products.FindByID(ctx, product.ID)
	if stored.Status != entity.ProductStatusSold || stored.SaleID == nil || *stored.SaleID != output.Sale.ID {
		t.Fatalf("expected product sold by the sale, got %+v", stored)
	}
	if stored.SoldAt == nil || !stored.SoldAt.Equal(entity.Day(saleDate)) {
		t.Errorf("expected sold on the sale date, got %v", stored.SoldAt)
	}

	_, err = uc.Execute(ctx, CreateSaleInput{
		UserID:      userID,
		ProductID:   &product.ID,
		TotalAmount: decimal.NewFromInt(80),
		SaleDate:    saleDate,
	})
	if !errors.Is(err, domainerror.ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable selling twice, got %v", err)
	}
	if sales.Count() != 1 || len(cashRepo.Movements(userID)) != 1 {
		t.Errorf("expected one sale and one movement, got %d and %d", sales.Count(), len(cashRepo.Movements(userID)))
	}
}

func TestCreateSale_ConcurrentProductSaleRollsBack(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	saleDate := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	product := entity.NewProduct(userID, "Bolsa couro", decimal.NewFromInt(120), decimal.Zero, saleDate)
	products := usecasetest.NewProductRepository(product)
	products.BeforeUpdateStatus = func(p *entity.Product) {
		products.SetStatus(p.ID, entity.ProductStatusSold)
	}
	sales := usecasetest.NewSaleRepository()
	cashRepo := usecasetest.NewCashRepository()
	uc := NewCreateSaleUseCase(sales, usecasetest.NewSellerRepository(), usecasetest.NewCustomerRepository(), products,
		usecasetest.NewCommissionRepository(), cash.NewBook(cashRepo, nil))

	_, err := uc.Execute(ctx, CreateSaleInput{
		UserID:      userID,
		ProductID:   &product.ID,
		TotalAmount: decimal.NewFromInt(120),
		SaleDate:    saleDate,
	})
	if !errors.Is(err, domainerror.ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
	if sales.Count() != 0 {
		t.Errorf("expected sale removed, got %d", sales.Count())
	}
	if got := len(cashRepo.Movements(userID)); got != 0 {
		t.Errorf("expected inflow removed, got %d movements", got)
	}
	if snapshot := cashRepo.Snapshot(userID, saleDate); snapshot != nil && !snapshot.InflowTotal.IsZero() {
		t.Errorf("expected inflow total reverted, got %s", snapshot.InflowTotal)
	}
}
