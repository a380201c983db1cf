package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CashSnapshotModel represents the cash_snapshots table in the database.
type CashSnapshotModel struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_cash_snapshots_user_date"`
	Date           time.Time           `gorm:"type:date;not null;uniqueIndex:idx_cash_snapshots_user_date"`
	OpeningBalance decimal.NullDecimal `gorm:"type:decimal(15,2);default:0"`
	InflowTotal    decimal.NullDecimal `gorm:"type:decimal(15,2);default:0"`
	OutflowTotal   decimal.NullDecimal `gorm:"type:decimal(15,2);default:0"`
	ClosingBalance decimal.NullDecimal `gorm:"type:decimal(15,2);default:0"`
	CreatedAt      time.Time           `gorm:"not null"`
	UpdatedAt      time.Time           `gorm:"not null"`
}

// TableName returns the table name for the CashSnapshotModel.
func (CashSnapshotModel) TableName() string {
	return "cash_snapshots"
}

// ToEntity converts a CashSnapshotModel to a domain CashSnapshot entity.
// NULL balances read as zero.
func (m *CashSnapshotModel) ToEntity() *entity.CashSnapshot {
	return &entity.CashSnapshot{
		ID:             m.ID,
		UserID:         m.UserID,
		Date:           entity.Day(m.Date),
		OpeningBalance: amount(m.OpeningBalance),
		InflowTotal:    amount(m.InflowTotal),
		OutflowTotal:   amount(m.OutflowTotal),
		ClosingBalance: amount(m.ClosingBalance),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CashSnapshotFromEntity creates a CashSnapshotModel from a domain CashSnapshot entity.
func CashSnapshotFromEntity(snapshot *entity.CashSnapshot) *CashSnapshotModel {
	return &CashSnapshotModel{
		ID:             snapshot.ID,
		UserID:         snapshot.UserID,
		Date:           snapshot.Date,
		OpeningBalance: decimal.NewNullDecimal(snapshot.OpeningBalance),
		InflowTotal:    decimal.NewNullDecimal(snapshot.InflowTotal),
		OutflowTotal:   decimal.NewNullDecimal(snapshot.OutflowTotal),
		ClosingBalance: decimal.NewNullDecimal(snapshot.ClosingBalance),
		CreatedAt:      snapshot.CreatedAt,
		UpdatedAt:      snapshot.UpdatedAt,
	}
}

// amount returns a stored money value rounded to cents, or zero when NULL.
func amount(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal.Round(2)
}

// CashMovementModel represents the cash_movements table in the database.
type CashMovementModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	SnapshotID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Direction     string          `gorm:"type:varchar(10);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description   string          `gorm:"type:varchar(255)"`
	PaymentMethod string          `gorm:"type:varchar(30)"`
	IncomeID      *uuid.UUID      `gorm:"type:uuid;index"`
	ExpenseID     *uuid.UUID      `gorm:"type:uuid;index"`
	SaleID        *uuid.UUID      `gorm:"type:uuid;index"`
	CommissionID  *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CashMovementModel.
func (CashMovementModel) TableName() string {
	return "cash_movements"
}

// ToEntity converts a CashMovementModel to a domain CashMovement entity.
func (m *CashMovementModel) ToEntity() *entity.CashMovement {
	return &entity.CashMovement{
		ID:            m.ID,
		UserID:        m.UserID,
		SnapshotID:    m.SnapshotID,
		Date:          entity.Day(m.Date),
		Direction:     entity.MovementDirection(m.Direction),
		Amount:        m.Amount,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		IncomeID:      m.IncomeID,
		ExpenseID:     m.ExpenseID,
		SaleID:        m.SaleID,
		CommissionID:  m.CommissionID,
		CreatedAt:     m.CreatedAt,
	}
}

// CashMovementFromEntity creates a CashMovementModel from a domain CashMovement entity.
func CashMovementFromEntity(movement *entity.CashMovement) *CashMovementModel {
	return &CashMovementModel{
		ID:            movement.ID,
		UserID:        movement.UserID,
		SnapshotID:    movement.SnapshotID,
		Date:          movement.Date,
		Direction:     string(movement.Direction),
		Amount:        movement.Amount,
		Description:   movement.Description,
		PaymentMethod: movement.PaymentMethod,
		IncomeID:      movement.IncomeID,
		ExpenseID:     movement.ExpenseID,
		SaleID:        movement.SaleID,
		CommissionID:  movement.CommissionID,
		CreatedAt:     movement.CreatedAt,
	}
}
