package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CommissionModel represents the commissions table in the database.
type CommissionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	BaseAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"type:varchar(10);not null;default:'pending';index"`
	PaymentDate *time.Time      `gorm:"type:date"`
	ExpenseID   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CommissionModel.
func (CommissionModel) TableName() string {
	return "commissions"
}

// ToEntity converts a CommissionModel to a domain Commission entity.
func (m *CommissionModel) ToEntity() *entity.Commission {
	var paymentDate *time.Time
	if m.PaymentDate != nil {
		day := entity.Day(*m.PaymentDate)
		paymentDate = &day
	}

	return &entity.Commission{
		ID:          m.ID,
		UserID:      m.UserID,
		SaleID:      m.SaleID,
		SellerID:    m.SellerID,
		BaseAmount:  m.BaseAmount,
		Rate:        m.Rate,
		Amount:      m.Amount,
		Status:      entity.CommissionStatus(m.Status),
		PaymentDate: paymentDate,
		ExpenseID:   m.ExpenseID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CommissionFromEntity creates a CommissionModel from a domain Commission entity.
func CommissionFromEntity(commission *entity.Commission) *CommissionModel {
	return &CommissionModel{
		ID:          commission.ID,
		UserID:      commission.UserID,
		SaleID:      commission.SaleID,
		SellerID:    commission.SellerID,
		BaseAmount:  commission.BaseAmount,
		Rate:        commission.Rate,
		Amount:      commission.Amount,
		Status:      string(commission.Status),
		PaymentDate: commission.PaymentDate,
		ExpenseID:   commission.ExpenseID,
		CreatedAt:   commission.CreatedAt,
		UpdatedAt:   commission.UpdatedAt,
	}
}
