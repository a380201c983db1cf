package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period       string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	Metric       string          `gorm:"type:varchar(10);not null;default:'sales'"`
	SellerID     *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		Period:       entity.GoalPeriod(m.Period),
		Metric:       entity.GoalMetric(m.Metric),
		SellerID:     m.SellerID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    softDeletedAt(m.DeletedAt),
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		Period:       string(goal.Period),
		Metric:       string(goal.Metric),
		SellerID:     goal.SellerID,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
		DeletedAt:    gormDeletedAt(goal.DeletedAt),
	}
}

// AllModels lists every model for migrations.
func AllModels() []any {
	return []any{
		&CategoryModel{},
		&ExpenseModel{},
		&IncomeModel{},
		&SellerModel{},
		&SaleModel{},
		&CommissionModel{},
		&CashSnapshotModel{},
		&CashMovementModel{},
		&GoalModel{},
		&CustomerModel{},
		&SupplierModel{},
		&ProductModel{},
	}
}
