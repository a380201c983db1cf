package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCreateProduct_Validation(t *testing.T) {
	userID := uuid.New()
	supplier := entity.NewSupplier(userID, "Bazar da Vila", "", "", "")
	foreign := entity.NewSupplier(uuid.New(), "Outro bazar", "", "", "")

	tests := []struct {
		name     string
		input    CreateProductInput
		expected error
	}{
		{
			name:     "zero price",
			input:    CreateProductInput{Name: "Jaqueta jeans", Price: decimal.Zero},
			expected: domainerror.ErrInvalidProductPrice,
		},
		{
			name:     "negative cost",
			input:    CreateProductInput{Name: "Jaqueta jeans", Price: decimal.NewFromInt(80), CostPrice: decimal.NewFromInt(-1)},
			expected: domainerror.ErrInvalidProductPrice,
		},
		{
			name:     "supplier of another user",
			input:    CreateProductInput{Name: "Jaqueta jeans", Price: decimal.NewFromInt(80), SupplierID: &foreign.ID},
			expected: domainerror.ErrSupplierNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := usecasetest.NewProductRepository()
			tt.input.UserID = userID
			uc := NewCreateProductUseCase(products, usecasetest.NewSupplierRepository(supplier, foreign))
			if _, err := uc.Execute(context.Background(), tt.input); !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}

	t.Run("blank name", func(t *testing.T) {
		uc := NewCreateProductUseCase(usecasetest.NewProductRepository(), usecasetest.NewSupplierRepository())
		_, err := uc.Execute(context.Background(), CreateProductInput{UserID: userID, Name: "  ", Price: decimal.NewFromInt(80)})
		var productErr *domainerror.ProductError
		if !errors.As(err, &productErr) || productErr.Code != domainerror.ErrCodeMissingProductFields {
			t.Errorf("expected ErrCodeMissingProductFields, got %v", err)
		}
	})

	t.Run("available with supplier", func(t *testing.T) {
		uc := NewCreateProductUseCase(usecasetest.NewProductRepository(), usecasetest.NewSupplierRepository(supplier))
		output, err := uc.Execute(context.Background(), CreateProductInput{
			UserID:     userID,
			Name:       " Jaqueta jeans ",
			SKU:        "JQ-001",
			SupplierID: &supplier.ID,
			CostPrice:  decimal.RequireFromString("30.456"),
			Price:      decimal.NewFromInt(80),
			AcquiredOn: time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := output.Product
		if p.Name != "Jaqueta jeans" || p.Status != entity.ProductStatusAvailable {
			t.Errorf("unexpected product: %+v", p)
		}
		if !p.CostPrice.Equal(decimal.RequireFromString("30.46")) {
			t.Errorf("expected cost rounded to 30.46, got %s", p.CostPrice)
		}
		if !p.AcquiredOn.Equal(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected acquisition day truncated, got %s", p.AcquiredOn)
		}
	})
}

func TestListProducts_Filters(t *testing.T) {
	userID := uuid.New()
	supplierID := uuid.New()
	available := entity.NewProduct(userID, "Bolsa couro", decimal.NewFromInt(120), decimal.NewFromInt(40), time.Now())
	available.SupplierID = &supplierID
	sold := entity.NewProduct(userID, "Vestido midi", decimal.NewFromInt(90), decimal.NewFromInt(20), time.Now())
	sold.MarkSold(uuid.New(), time.Now())
	other := entity.NewProduct(uuid.New(), "Casaco", decimal.NewFromInt(150), decimal.Zero, time.Now())
	repo := usecasetest.NewProductRepository(available, sold, other)

	tests := []struct {
		name  string
		input ListProductsInput
		want  int
	}{
		{name: "all", input: ListProductsInput{UserID: userID}, want: 2},
		{name: "available", input: ListProductsInput{UserID: userID, Status: "available"}, want: 1},
		{name: "sold", input: ListProductsInput{UserID: userID, Status: "sold"}, want: 1},
		{name: "by supplier", input: ListProductsInput{UserID: userID, SupplierID: &supplierID}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewListProductsUseCase(repo).Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(output.Products) != tt.want {
				t.Errorf("expected %d products, got %d", tt.want, len(output.Products))
			}
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		_, err := NewListProductsUseCase(repo).Execute(context.Background(), ListProductsInput{UserID: userID, Status: "reserved"})
		if !errors.Is(err, domainerror.ErrInvalidProductStatus) {
			t.Errorf("expected ErrInvalidProductStatus, got %v", err)
		}
	})
}

func TestUpdateProduct_SoldPricesAreFrozen(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := entity.NewProduct(userID, "Vestido midi", decimal.NewFromInt(90), decimal.NewFromInt(20), time.Now())
	product.MarkSold(uuid.New(), time.Now())
	repo := usecasetest.NewProductRepository(product)
	uc := NewUpdateProductUseCase(repo, usecasetest.NewSupplierRepository())

	_, err := uc.Execute(ctx, UpdateProductInput{ProductID: product.ID, UserID: userID, Price: decPtr(70)})
	if !errors.Is(err, domainerror.ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}

	name := "Vestido midi floral"
	output, err := uc.Execute(ctx, UpdateProductInput{ProductID: product.ID, UserID: userID, Name: &name, Price: decPtr(90)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Product.Name != name {
		t.Errorf("expected name updated, got %q", output.Product.Name)
	}

	stored, _ := repo.FindByID(ctx, product.ID)
	if !stored.Price.Equal(decimal.NewFromInt(90)) || stored.Status != entity.ProductStatusSold {
		t.Errorf("expected sold product at 90, got %+v", stored)
	}
}

func TestUpdateProduct_Reprice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := entity.NewProduct(userID, "Bolsa couro", decimal.NewFromInt(120), decimal.NewFromInt(40), time.Now())
	repo := usecasetest.NewProductRepository(product)
	uc := NewUpdateProductUseCase(repo, usecasetest.NewSupplierRepository())

	if _, err := uc.Execute(ctx, UpdateProductInput{ProductID: product.ID, UserID: userID, Price: decPtr(0)}); !errors.Is(err, domainerror.ErrInvalidProductPrice) {
		t.Errorf("expected ErrInvalidProductPrice, got %v", err)
	}
	if _, err := uc.Execute(ctx, UpdateProductInput{ProductID: product.ID, UserID: userID, Price: decPtr(99)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.FindByID(ctx, product.ID)
	if !stored.Price.Equal(decimal.NewFromInt(99)) {
		t.Errorf("expected price 99, got %s", stored.Price)
	}
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	available := entity.NewProduct(userID, "Bolsa couro", decimal.NewFromInt(120), decimal.Zero, time.Now())
	sold := entity.NewProduct(userID, "Vestido midi", decimal.NewFromInt(90), decimal.Zero, time.Now())
	sold.MarkSold(uuid.New(), time.Now())
	repo := usecasetest.NewProductRepository(available, sold)
	uc := NewDeleteProductUseCase(repo)

	if err := uc.Execute(ctx, DeleteProductInput{ProductID: sold.ID, UserID: userID}); !errors.Is(err, domainerror.ErrProductNotAvailable) {
		t.Errorf("expected ErrProductNotAvailable, got %v", err)
	}
	if err := uc.Execute(ctx, DeleteProductInput{ProductID: available.ID, UserID: uuid.New()}); !errors.Is(err, domainerror.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for another user, got %v", err)
	}
	if err := uc.Execute(ctx, DeleteProductInput{ProductID: available.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, available.ID); !errors.Is(err, domainerror.ErrProductNotFound) {
		t.Errorf("expected product removed, got %v", err)
	}
}
