package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records items sold to a customer.
type Sale struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SellerID      *uuid.UUID
	CustomerID    *uuid.UUID
	CustomerName  string
	ProductID     *uuid.UUID
	Description   string
	TotalAmount   decimal.Decimal
	SaleDate      time.Time
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSale creates a new Sale entity.
func NewSale(
	userID uuid.UUID,
	sellerID *uuid.UUID,
	customerName, description string,
	totalAmount decimal.Decimal,
	saleDate time.Time,
	paymentMethod string,
) *Sale {
	now := time.Now().UTC()

	return &Sale{
		ID:            uuid.New(),
		UserID:        userID,
		SellerID:      sellerID,
		CustomerName:  customerName,
		Description:   description,
		TotalAmount:   totalAmount.Round(2),
		SaleDate:      Day(saleDate),
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
