// Package inventory contains stock item use cases.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/party"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

const (
	// MaxNameLength is the maximum allowed length for a product name.
	MaxNameLength = 120
	// MaxDescriptionLength is the maximum allowed length for a product description.
	MaxDescriptionLength = 1000
	// MaxSKULength is the maximum allowed length for a product SKU.
	MaxSKULength = 40
)

// FindOwnedProduct loads a product and checks it belongs to the user.
// Products of other users read as not found.
func FindOwnedProduct(ctx context.Context, repo adapter.ProductRepository, productID, userID uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, productID)
	if err != nil && !errors.Is(err, domainerror.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if err != nil || product.UserID != userID {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}
	return product, nil
}

func validatePrices(price, costPrice decimal.Decimal) error {
	if !price.IsPositive() {
		return domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			"price must be greater than zero",
			domainerror.ErrInvalidProductPrice,
		)
	}
	if costPrice.IsNegative() {
		return domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			"cost price must not be negative",
			domainerror.ErrInvalidProductPrice,
		)
	}
	return nil
}

func validateText(name, description, sku string) error {
	if name == "" {
		return domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			"name is required",
			nil,
		)
	}
	for _, f := range []struct {
		field string
		value string
		limit int
	}{
		{"name", name, MaxNameLength},
		{"description", description, MaxDescriptionLength},
		{"sku", sku, MaxSKULength},
	} {
		if len([]rune(f.value)) > f.limit {
			return domainerror.NewProductError(
				domainerror.ErrCodeProductFieldTooLong,
				fmt.Sprintf("%s must not exceed %d characters", f.field, f.limit),
				nil,
			)
		}
	}
	return nil
}

func notAvailable(action string) error {
	return domainerror.NewProductError(
		domainerror.ErrCodeProductNotAvailable,
		fmt.Sprintf("product was sold and cannot be %s", action),
		domainerror.ErrProductNotAvailable,
	)
}

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	SKU         string
	SupplierID  *uuid.UUID
	CostPrice   decimal.Decimal
	Price       decimal.Decimal
	AcquiredOn  time.Time // defaults to today
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase adds a stock item.
type CreateProductUseCase struct {
	productRepo  adapter.ProductRepository
	supplierRepo adapter.SupplierRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository, supplierRepo adapter.SupplierRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	name := strings.TrimSpace(input.Name)
	sku := strings.TrimSpace(input.SKU)
	if err := validateText(name, input.Description, sku); err != nil {
		return nil, err
	}
	if err := validatePrices(input.Price, input.CostPrice); err != nil {
		return nil, err
	}
	if input.SupplierID != nil {
		if _, err := party.FindOwnedSupplier(ctx, uc.supplierRepo, *input.SupplierID, input.UserID); err != nil {
			return nil, err
		}
	}

	acquiredOn := input.AcquiredOn
	if acquiredOn.IsZero() {
		acquiredOn = entity.Today()
	}

	product := entity.NewProduct(input.UserID, name, input.Price, input.CostPrice, acquiredOn)
	product.Description = input.Description
	product.SKU = sku
	product.SupplierID = input.SupplierID
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{
		Product: product,
	}, nil
}

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	UserID     uuid.UUID
	Status     string
	SupplierID *uuid.UUID
}

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Products []*entity.Product
}

// ListProductsUseCase lists stock items.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product listing.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	filter := adapter.ProductFilter{
		UserID:     input.UserID,
		SupplierID: input.SupplierID,
	}
	if input.Status != "" {
		status := entity.ProductStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeInvalidProductStatus,
				"status must be 'available' or 'sold'",
				domainerror.ErrInvalidProductStatus,
			)
		}
		filter.Status = &status
	}

	products, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsOutput{
		Products: products,
	}, nil
}

// GetProductInput represents the input for fetching a product.
type GetProductInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
}

// GetProductOutput represents the output of fetching a product.
type GetProductOutput struct {
	Product *entity.Product
}

// GetProductUseCase fetches one stock item.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(productRepo adapter.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product lookup.
func (uc *GetProductUseCase) Execute(ctx context.Context, input GetProductInput) (*GetProductOutput, error) {
	product, err := FindOwnedProduct(ctx, uc.productRepo, input.ProductID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProductOutput{
		Product: product,
	}, nil
}

// UpdateProductInput represents the input for product update.
// Nil fields are left unchanged.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Description *string
	SKU         *string
	SupplierID  *uuid.UUID
	CostPrice   *decimal.Decimal
	Price       *decimal.Decimal
	AcquiredOn  *time.Time
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase edits a stock item. Prices of sold items are frozen.
type UpdateProductUseCase struct {
	productRepo  adapter.ProductRepository
	supplierRepo adapter.SupplierRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository, supplierRepo adapter.SupplierRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	product, err := FindOwnedProduct(ctx, uc.productRepo, input.ProductID, input.UserID)
	if err != nil {
		return nil, err
	}

	repriced := (input.Price != nil && !input.Price.Equal(product.Price)) ||
		(input.CostPrice != nil && !input.CostPrice.Equal(product.CostPrice))
	if repriced && !product.Available() {
		return nil, notAvailable("repriced")
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.SKU != nil {
		product.SKU = strings.TrimSpace(*input.SKU)
	}
	if err := validateText(product.Name, product.Description, product.SKU); err != nil {
		return nil, err
	}

	if input.Price != nil {
		product.Price = input.Price.Round(2)
	}
	if input.CostPrice != nil {
		product.CostPrice = input.CostPrice.Round(2)
	}
	if err := validatePrices(product.Price, product.CostPrice); err != nil {
		return nil, err
	}

	if input.SupplierID != nil {
		if _, err := party.FindOwnedSupplier(ctx, uc.supplierRepo, *input.SupplierID, input.UserID); err != nil {
			return nil, err
		}
		product.SupplierID = input.SupplierID
	}
	if input.AcquiredOn != nil {
		product.AcquiredOn = entity.Day(*input.AcquiredOn)
	}

	product.UpdatedAt = time.Now().UTC()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{
		Product: product,
	}, nil
}

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
}

// DeleteProductUseCase removes a stock item that was never sold.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product deletion.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	product, err := FindOwnedProduct(ctx, uc.productRepo, input.ProductID, input.UserID)
	if err != nil {
		return err
	}
	if !product.Available() {
		return notAvailable("deleted")
	}

	if err := uc.productRepo.Delete(ctx, product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
