package sale

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/application/usecase/inventory"
	"github.com/brecho/backoffice/internal/application/usecase/party"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	UserID        uuid.UUID
	SellerID      *uuid.UUID
	CustomerID    *uuid.UUID
	ProductID     *uuid.UUID // a stock item marked sold by the sale
	CustomerName  string // defaults to the customer's name
	Description   string
	TotalAmount   decimal.Decimal
	SaleDate      time.Time
	PaymentMethod string
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale       *entity.Sale
	Commission *entity.Commission // nil when the sale has no commissioned seller
}

// CreateSaleUseCase records a sale, its cash inflow and the seller commission,
// and marks the sold stock item.
type CreateSaleUseCase struct {
	saleRepo       adapter.SaleRepository
	sellerRepo     adapter.SellerRepository
	customerRepo   adapter.CustomerRepository
	productRepo    adapter.ProductRepository
	commissionRepo adapter.CommissionRepository
	book           *cash.Book
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(
	saleRepo adapter.SaleRepository,
	sellerRepo adapter.SellerRepository,
	customerRepo adapter.CustomerRepository,
	productRepo adapter.ProductRepository,
	commissionRepo adapter.CommissionRepository,
	book *cash.Book,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:       saleRepo,
		sellerRepo:     sellerRepo,
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		commissionRepo: commissionRepo,
		book:           book,
	}
}

// Execute performs the sale creation.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidSaleAmount,
		)
	}
	if input.SaleDate.IsZero() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeMissingSaleFields,
			"sale date is required",
			nil,
		)
	}

	var seller *entity.Seller
	if input.SellerID != nil {
		found, err := FindOwnedSeller(ctx, uc.sellerRepo, *input.SellerID, input.UserID)
		if err != nil {
			return nil, err
		}
		if !found.Active {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSellerInactive,
				"seller is inactive",
				domainerror.ErrSellerInactive,
			)
		}
		seller = found
	}

	customerName := strings.TrimSpace(input.CustomerName)
	if input.CustomerID != nil {
		customer, err := party.FindOwnedCustomer(ctx, uc.customerRepo, *input.CustomerID, input.UserID)
		if err != nil {
			return nil, err
		}
		if customerName == "" {
			customerName = customer.Name
		}
	}

	description := strings.TrimSpace(input.Description)
	var product *entity.Product
	if input.ProductID != nil {
		found, err := inventory.FindOwnedProduct(ctx, uc.productRepo, *input.ProductID, input.UserID)
		if err != nil {
			return nil, err
		}
		if !found.Available() {
			return nil, productSold()
		}
		product = found
		if description == "" {
			description = product.Name
		}
	}
	if description == "" {
		description = "Venda"
	}

	sale := entity.NewSale(
		input.UserID,
		input.SellerID,
		customerName,
		description,
		input.TotalAmount,
		input.SaleDate,
		input.PaymentMethod,
	)
	sale.CustomerID = input.CustomerID
	sale.ProductID = input.ProductID

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	saleID := sale.ID
	movement := &entity.CashMovement{
		Direction:     entity.MovementInflow,
		Amount:        sale.TotalAmount,
		Description:   sale.Description,
		PaymentMethod: sale.PaymentMethod,
		SaleID:        &saleID,
	}
	if err := uc.book.Record(ctx, sale.UserID, sale.SaleDate, movement); err != nil {
		if delErr := uc.saleRepo.Delete(ctx, sale.ID); delErr != nil {
			slog.Error("Failed to remove sale after cash movement failure",
				"sale_id", sale.ID,
				"error", delErr,
			)
		}
		return nil, err
	}

	if product != nil {
		if err := uc.markSold(ctx, product, sale); err != nil {
			uc.rollback(ctx, sale)
			return nil, err
		}
	}

	output := &CreateSaleOutput{Sale: sale}

	if seller != nil && seller.CommissionRate.IsPositive() {
		commission := entity.NewCommission(sale.UserID, sale.ID, seller.ID, sale.TotalAmount, seller.CommissionRate)
		if err := uc.commissionRepo.Create(ctx, commission); err != nil {
			// The sale stands; the commission can be created later from the sale.
			slog.Warn("Failed to create commission for sale",
				"sale_id", sale.ID,
				"seller_id", seller.ID,
				"error", err,
			)
		} else {
			output.Commission = commission
		}
	}

	return output, nil
}

// markSold moves the product from available to sold. A concurrent sale of the
// same piece loses the race and is rejected.
func (uc *CreateSaleUseCase) markSold(ctx context.Context, product *entity.Product, sale *entity.Sale) error {
	product.MarkSold(sale.ID, sale.SaleDate)
	updated, err := uc.productRepo.UpdateStatus(ctx, product, entity.ProductStatusAvailable)
	if err != nil {
		return fmt.Errorf("failed to mark product sold: %w", err)
	}
	if !updated {
		return productSold()
	}
	return nil
}

// rollback removes the sale and its cash inflow.
func (uc *CreateSaleUseCase) rollback(ctx context.Context, sale *entity.Sale) {
	saleID := sale.ID
	if _, err := uc.book.RemoveMovementsFor(ctx, sale.UserID, entity.MovementLink{SaleID: &saleID}); err != nil {
		slog.Error("Failed to remove cash movement of rejected sale",
			"sale_id", sale.ID,
			"error", err,
		)
	}
	if err := uc.saleRepo.Delete(ctx, sale.ID); err != nil {
		slog.Error("Failed to remove rejected sale",
			"sale_id", sale.ID,
			"error", err,
		)
	}
}

func productSold() error {
	return domainerror.NewProductError(
		domainerror.ErrCodeProductNotAvailable,
		"product was already sold",
		domainerror.ErrProductNotAvailable,
	)
}
