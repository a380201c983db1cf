package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionStatus represents the lifecycle state of a commission.
type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "pending"
	CommissionStatusApproved CommissionStatus = "approved"
	CommissionStatusPaid     CommissionStatus = "paid"
	CommissionStatusReversed CommissionStatus = "reversed"
)

// IsValid reports whether the status is known.
func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionStatusPending, CommissionStatusApproved, CommissionStatusPaid, CommissionStatusReversed:
		return true
	}
	return false
}

// Commission is the amount owed to a seller for a sale.
// It only reaches the paid status through settlement.
type Commission struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	SaleID      uuid.UUID
	SellerID    uuid.UUID
	BaseAmount  decimal.Decimal
	Rate        decimal.Decimal // Percentage, 0-100
	Amount      decimal.Decimal
	Status      CommissionStatus
	PaymentDate *time.Time
	ExpenseID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var hundred = decimal.NewFromInt(100)

// CalculateCommission returns base * rate / 100 rounded to cents.
func CalculateCommission(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred).Round(2)
}

// NewCommission creates a pending Commission for a sale.
func NewCommission(userID, saleID, sellerID uuid.UUID, base, rate decimal.Decimal) *Commission {
	now := time.Now().UTC()

	return &Commission{
		ID:         uuid.New(),
		UserID:     userID,
		SaleID:     saleID,
		SellerID:   sellerID,
		BaseAmount: base,
		Rate:       rate,
		Amount:     CalculateCommission(base, rate),
		Status:     CommissionStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
