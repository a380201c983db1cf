package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Seller is a person who sells on behalf of the store and earns commission.
type Seller struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Email          string
	CommissionRate decimal.Decimal // Percentage, 0-100
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewSeller creates an active Seller entity.
func NewSeller(userID uuid.UUID, name, email string, commissionRate decimal.Decimal) *Seller {
	now := time.Now().UTC()

	return &Seller{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Email:          email,
		CommissionRate: commissionRate,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
