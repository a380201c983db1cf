package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=120"`
	Description string          `json:"description,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	SupplierID  *string         `json:"supplier_id,omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Price       decimal.Decimal `json:"price"`
	AcquiredOn  string          `json:"acquired_on,omitempty"`
}

// UpdateProductRequest represents the request body for product update.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	Description *string          `json:"description,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
	SupplierID  *string          `json:"supplier_id,omitempty"`
	CostPrice   *decimal.Decimal `json:"cost_price,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	AcquiredOn  *string          `json:"acquired_on,omitempty"`
}

// ProductResponse represents a single product in API responses.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	SupplierID  *string         `json:"supplier_id"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	SaleID      *string         `json:"sale_id"`
	SoldAt      *string         `json:"sold_at"`
	AcquiredOn  string          `json:"acquired_on"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse represents the response for listing products.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	StockValue decimal.Decimal   `json:"stock_value"` // price of the available items
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		SupplierID:  optionalUUID(p.SupplierID),
		CostPrice:   p.CostPrice,
		Price:       p.Price,
		Status:      string(p.Status),
		SaleID:      optionalUUID(p.SaleID),
		SoldAt:      formatOptionalDate(p.SoldAt),
		AcquiredOn:  formatDate(p.AcquiredOn),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converts products to a ProductListResponse.
func ToProductListResponse(products []*entity.Product) ProductListResponse {
	response := ProductListResponse{
		Products:   make([]ProductResponse, len(products)),
		StockValue: decimal.Zero,
	}
	for i, p := range products {
		response.Products[i] = ToProductResponse(p)
		if p.Available() {
			response.StockValue = response.StockValue.Add(p.Price)
		}
	}
	return response
}
