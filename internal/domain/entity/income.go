package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents money received by the store outside of sales.
type Income struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	CategoryID    *uuid.UUID
	PaymentMethod string
	Recurrence    Recurrence
	Notes         string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	date time.Time,
	categoryID *uuid.UUID,
	paymentMethod string,
) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:            uuid.New(),
		UserID:        userID,
		Description:   description,
		Amount:        amount.Round(2),
		Date:          Day(date),
		CategoryID:    categoryID,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
