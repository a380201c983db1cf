package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestProductRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	userID := uuid.New()
	supplierID := uuid.New()
	acquired := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	bolsa := entity.NewProduct(userID, "Bolsa couro", decimal.NewFromInt(120), decimal.NewFromInt(40), acquired)
	bolsa.SupplierID = &supplierID
	vestido := entity.NewProduct(userID, "Vestido midi", decimal.NewFromInt(90), decimal.NewFromInt(20), acquired)
	vestido.MarkSold(uuid.New(), acquired.AddDate(0, 0, 5))
	for _, p := range []*entity.Product{
		bolsa,
		vestido,
		entity.NewProduct(uuid.New(), "Casaco", decimal.NewFromInt(150), decimal.Zero, acquired),
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	available := entity.ProductStatusAvailable
	sold := entity.ProductStatusSold
	tests := []struct {
		name   string
		filter adapter.ProductFilter
		want   int
	}{
		{name: "user scope", filter: adapter.ProductFilter{UserID: userID}, want: 2},
		{name: "available", filter: adapter.ProductFilter{UserID: userID, Status: &available}, want: 1},
		{name: "sold", filter: adapter.ProductFilter{UserID: userID, Status: &sold}, want: 1},
		{name: "by supplier", filter: adapter.ProductFilter{UserID: userID, SupplierID: &supplierID}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(products) != tt.want {
				t.Errorf("expected %d products, got %d", tt.want, len(products))
			}
		})
	}

	stored, err := repo.FindByID(ctx, vestido.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.SoldAt == nil || !stored.SoldAt.Equal(acquired.AddDate(0, 0, 5)) || stored.SaleID == nil {
		t.Errorf("expected sale link round trip, got %+v", stored)
	}
}

func TestProductRepository_UpdateStatusIsConditional(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	product := entity.NewProduct(uuid.New(), "Jaqueta jeans", decimal.NewFromInt(80), decimal.NewFromInt(30), time.Now())
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := *product
	first.MarkSold(uuid.New(), time.Now())
	updated, err := repo.UpdateStatus(ctx, &first, entity.ProductStatusAvailable)
	if err != nil || !updated {
		t.Fatalf("expected first sale to update, got %v %v", updated, err)
	}

	second := *product
	second.MarkSold(uuid.New(), time.Now())
	updated, err = repo.UpdateStatus(ctx, &second, entity.ProductStatusAvailable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated {
		t.Fatal("expected second sale to lose the race")
	}

	stored, _ := repo.FindByID(ctx, product.ID)
	if stored.SaleID == nil || *stored.SaleID != *first.SaleID {
		t.Errorf("expected the first sale to own the product, got %v", stored.SaleID)
	}
}

func TestProductRepository_UpdateKeepsStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	product := entity.NewProduct(uuid.New(), "Jaqueta jeans", decimal.NewFromInt(80), decimal.NewFromInt(30), time.Now())
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	product.Name = "Jaqueta jeans oversized"
	product.Price = decimal.RequireFromString("85.90")
	product.Status = entity.ProductStatusSold
	product.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Name != "Jaqueta jeans oversized" || !stored.Price.Equal(product.Price) {
		t.Errorf("update not persisted: %+v", stored)
	}
	if stored.Status != entity.ProductStatusAvailable {
		t.Errorf("expected status untouched by Update, got %s", stored.Status)
	}

	if err := repo.Delete(ctx, product.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Update(ctx, product); !errors.Is(err, domainerror.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound updating a deleted product, got %v", err)
	}
	if err := repo.Delete(ctx, product.ID); !errors.Is(err, domainerror.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
}
