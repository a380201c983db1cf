package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CreateSellerRequest represents the request body for seller creation.
type CreateSellerRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	Email          string          `json:"email,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// UpdateSellerRequest represents the request body for seller update.
type UpdateSellerRequest struct {
	Name           *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Email          *string          `json:"email,omitempty"`
	CommissionRate *decimal.Decimal `json:"commission_rate,omitempty"`
	Active         *bool            `json:"active,omitempty"`
}

// SellerResponse represents a single seller in API responses.
type SellerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SellerListResponse represents the response for listing sellers.
type SellerListResponse struct {
	Sellers []SellerResponse `json:"sellers"`
}

// ToSellerResponse converts a domain Seller entity to a SellerResponse DTO.
func ToSellerResponse(s *entity.Seller) SellerResponse {
	return SellerResponse{
		ID:             s.ID.String(),
		Name:           s.Name,
		Email:          s.Email,
		CommissionRate: s.CommissionRate,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ToSellerListResponse converts sellers to a SellerListResponse.
func ToSellerListResponse(sellers []*entity.Seller) SellerListResponse {
	items := make([]SellerResponse, len(sellers))
	for i, s := range sellers {
		items[i] = ToSellerResponse(s)
	}
	return SellerListResponse{Sellers: items}
}

// CreateSaleRequest represents the request body for sale creation.
type CreateSaleRequest struct {
	SellerID      *string         `json:"seller_id,omitempty"`
	CustomerID    *string         `json:"customer_id,omitempty"`
	ProductID     *string         `json:"product_id,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Description   string          `json:"description,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	SaleDate      string          `json:"sale_date" binding:"required"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID            string              `json:"id"`
	SellerID      *string             `json:"seller_id"`
	CustomerID    *string             `json:"customer_id,omitempty"`
	ProductID     *string             `json:"product_id,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	Description   string              `json:"description"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	SaleDate      string              `json:"sale_date"`
	PaymentMethod string              `json:"payment_method"`
	Commission    *CommissionResponse `json:"commission,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse  `json:"sales"`
	Total decimal.Decimal `json:"total"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID.String(),
		SellerID:      optionalUUID(s.SellerID),
		CustomerID:    optionalUUID(s.CustomerID),
		ProductID:     optionalUUID(s.ProductID),
		CustomerName:  s.CustomerName,
		Description:   s.Description,
		TotalAmount:   s.TotalAmount,
		SaleDate:      formatDate(s.SaleDate),
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSaleListResponse converts sales to a SaleListResponse.
func ToSaleListResponse(sales []*entity.Sale) SaleListResponse {
	response := SaleListResponse{
		Sales: make([]SaleResponse, len(sales)),
		Total: decimal.Zero,
	}
	for i, s := range sales {
		response.Sales[i] = ToSaleResponse(s)
		response.Total = response.Total.Add(s.TotalAmount)
	}
	return response
}
