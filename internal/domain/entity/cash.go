package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementDirection tells whether a cash movement adds or removes money.
type MovementDirection string

const (
	MovementInflow  MovementDirection = "inflow"
	MovementOutflow MovementDirection = "outflow"
)

// CashSnapshot summarizes one calendar day of cash for a user.
type CashSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Date           time.Time
	OpeningBalance decimal.Decimal
	InflowTotal    decimal.Decimal
	OutflowTotal   decimal.Decimal
	ClosingBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCashSnapshot creates an empty snapshot carrying the given opening balance.
func NewCashSnapshot(userID uuid.UUID, date time.Time, opening decimal.Decimal) *CashSnapshot {
	now := time.Now().UTC()

	return &CashSnapshot{
		ID:             uuid.New(),
		UserID:         userID,
		Date:           Day(date),
		OpeningBalance: opening,
		InflowTotal:    decimal.Zero,
		OutflowTotal:   decimal.Zero,
		ClosingBalance: opening,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ExpectedClosing returns opening + inflows - outflows.
func (s *CashSnapshot) ExpectedClosing() decimal.Decimal {
	return s.OpeningBalance.Add(s.InflowTotal).Sub(s.OutflowTotal)
}

// CashMovement is a single inflow or outflow tied to a source document.
type CashMovement struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SnapshotID    uuid.UUID
	Date          time.Time
	Direction     MovementDirection
	Amount        decimal.Decimal
	Description   string
	PaymentMethod string
	IncomeID      *uuid.UUID
	ExpenseID     *uuid.UUID
	SaleID        *uuid.UUID
	CommissionID  *uuid.UUID
	CreatedAt     time.Time
}

// Delta returns the signed effect of the movement on the balance.
func (m *CashMovement) Delta() decimal.Decimal {
	if m.Direction == MovementOutflow {
		return m.Amount.Neg()
	}
	return m.Amount
}

// MovementLink identifies the source document of movements.
type MovementLink struct {
	IncomeID     *uuid.UUID
	ExpenseID    *uuid.UUID
	SaleID       *uuid.UUID
	CommissionID *uuid.UUID
}

// LedgerDay is a single day of the cash ledger.
type LedgerDay struct {
	Date           time.Time
	OpeningBalance decimal.Decimal
	Inflows        decimal.Decimal
	Outflows       decimal.Decimal
	ClosingBalance decimal.Decimal
	HasSnapshot    bool
	Balanced       bool
}
