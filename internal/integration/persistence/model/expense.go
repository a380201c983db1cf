package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate       time.Time       `gorm:"type:date;not null;index"`
	PaymentDate   *time.Time      `gorm:"type:date;index"`
	Paid          bool            `gorm:"not null;default:false;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentMethod string          `gorm:"type:varchar(30)"`
	IsRecurring   bool            `gorm:"default:false"`
	Frequency     *string         `gorm:"type:varchar(10)"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierName  string          `gorm:"type:varchar(100)"`
	Notes         string          `gorm:"type:text"`
	Tags          TagList
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	DeletedAt     gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	var paymentDate *time.Time
	if m.PaymentDate != nil {
		day := entity.Day(*m.PaymentDate)
		paymentDate = &day
	}

	return &entity.Expense{
		ID:            m.ID,
		UserID:        m.UserID,
		Description:   m.Description,
		Amount:        m.Amount,
		DueDate:       entity.Day(m.DueDate),
		PaymentDate:   paymentDate,
		Paid:          m.Paid,
		CategoryID:    m.CategoryID,
		PaymentMethod: m.PaymentMethod,
		Recurrence:    recurrenceToEntity(m.IsRecurring, m.Frequency),
		SupplierID:    m.SupplierID,
		SupplierName:  m.SupplierName,
		Notes:         m.Notes,
		Tags:          tagsToEntity(m.Tags),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     softDeletedAt(m.DeletedAt),
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		UserID:        expense.UserID,
		Description:   expense.Description,
		Amount:        expense.Amount,
		DueDate:       expense.DueDate,
		PaymentDate:   expense.PaymentDate,
		Paid:          expense.Paid,
		CategoryID:    expense.CategoryID,
		PaymentMethod: expense.PaymentMethod,
		IsRecurring:   expense.Recurrence.Recurring,
		Frequency:     frequencyFromEntity(expense.Recurrence),
		SupplierID:    expense.SupplierID,
		SupplierName:  expense.SupplierName,
		Notes:         expense.Notes,
		Tags:          tagsFromEntity(expense.Tags),
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
		DeletedAt:     gormDeletedAt(expense.DeletedAt),
	}
}

func recurrenceToEntity(recurring bool, frequency *string) entity.Recurrence {
	r := entity.Recurrence{Recurring: recurring}
	if frequency != nil && *frequency != "" {
		f := entity.Frequency(*frequency)
		r.Frequency = &f
	}
	return r
}

func frequencyFromEntity(r entity.Recurrence) *string {
	if !r.Recurring || r.Frequency == nil {
		return nil
	}
	f := string(*r.Frequency)
	return &f
}
