package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// SellerModel represents the sellers table in the database.
type SellerModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Email          string          `gorm:"type:varchar(255)"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Active         bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SellerModel.
func (SellerModel) TableName() string {
	return "sellers"
}

// ToEntity converts a SellerModel to a domain Seller entity.
func (m *SellerModel) ToEntity() *entity.Seller {
	return &entity.Seller{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		CommissionRate: m.CommissionRate,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// SellerFromEntity creates a SellerModel from a domain Seller entity.
func SellerFromEntity(seller *entity.Seller) *SellerModel {
	return &SellerModel{
		ID:             seller.ID,
		UserID:         seller.UserID,
		Name:           seller.Name,
		Email:          seller.Email,
		CommissionRate: seller.CommissionRate,
		Active:         seller.Active,
		CreatedAt:      seller.CreatedAt,
		UpdatedAt:      seller.UpdatedAt,
	}
}
