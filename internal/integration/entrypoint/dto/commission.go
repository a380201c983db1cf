package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CreateCommissionRequest represents the request body for commission creation.
type CreateCommissionRequest struct {
	SaleID string           `json:"sale_id" binding:"required,uuid"`
	Rate   *decimal.Decimal `json:"rate,omitempty"`
}

// SettleCommissionRequest represents the request body for commission settlement.
type SettleCommissionRequest struct {
	ExpenseCategoryID string  `json:"expense_category_id" binding:"required,uuid"`
	PaymentDate       *string `json:"payment_date,omitempty"`
	PaymentMethod     string  `json:"payment_method,omitempty"`
}

// CommissionResponse represents a single commission in API responses.
type CommissionResponse struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"sale_id"`
	SellerID    string          `json:"seller_id"`
	BaseAmount  decimal.Decimal `json:"base_amount"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	PaymentDate *string         `json:"payment_date"`
	ExpenseID   *string         `json:"expense_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CommissionListResponse represents the response for listing commissions.
type CommissionListResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
	Total       decimal.Decimal      `json:"total"`
}

// SettleCommissionResponse represents the result of a settlement.
type SettleCommissionResponse struct {
	Commission CommissionResponse   `json:"commission"`
	Expense    ExpenseResponse      `json:"expense"`
	Movement   CashMovementResponse `json:"movement"`
}

// ToCommissionResponse converts a domain Commission entity to a CommissionResponse DTO.
func ToCommissionResponse(c *entity.Commission) CommissionResponse {
	return CommissionResponse{
		ID:          c.ID.String(),
		SaleID:      c.SaleID.String(),
		SellerID:    c.SellerID.String(),
		BaseAmount:  c.BaseAmount,
		Rate:        c.Rate,
		Amount:      c.Amount,
		Status:      string(c.Status),
		PaymentDate: formatOptionalDate(c.PaymentDate),
		ExpenseID:   optionalUUID(c.ExpenseID),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCommissionListResponse converts commissions to a CommissionListResponse.
func ToCommissionListResponse(commissions []*entity.Commission) CommissionListResponse {
	response := CommissionListResponse{
		Commissions: make([]CommissionResponse, len(commissions)),
		Total:       decimal.Zero,
	}
	for i, c := range commissions {
		response.Commissions[i] = ToCommissionResponse(c)
		response.Total = response.Total.Add(c.Amount)
	}
	return response
}
