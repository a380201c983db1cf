package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentMethod string          `gorm:"type:varchar(30)"`
	IsRecurring   bool            `gorm:"default:false"`
	Frequency     *string         `gorm:"type:varchar(10)"`
	Notes         string          `gorm:"type:text"`
	Tags          TagList
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	DeletedAt     gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:            m.ID,
		UserID:        m.UserID,
		Description:   m.Description,
		Amount:        m.Amount,
		Date:          entity.Day(m.Date),
		CategoryID:    m.CategoryID,
		PaymentMethod: m.PaymentMethod,
		Recurrence:    recurrenceToEntity(m.IsRecurring, m.Frequency),
		Notes:         m.Notes,
		Tags:          tagsToEntity(m.Tags),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     softDeletedAt(m.DeletedAt),
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:            income.ID,
		UserID:        income.UserID,
		Description:   income.Description,
		Amount:        income.Amount,
		Date:          income.Date,
		CategoryID:    income.CategoryID,
		PaymentMethod: income.PaymentMethod,
		IsRecurring:   income.Recurrence.Recurring,
		Frequency:     frequencyFromEntity(income.Recurrence),
		Notes:         income.Notes,
		Tags:          tagsFromEntity(income.Tags),
		CreatedAt:     income.CreatedAt,
		UpdatedAt:     income.UpdatedAt,
		DeletedAt:     gormDeletedAt(income.DeletedAt),
	}
}
