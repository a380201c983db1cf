package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID      *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName  string          `gorm:"type:varchar(100)"`
	ProductID     *uuid.UUID      `gorm:"type:uuid;index"`
	Description   string          `gorm:"type:varchar(255)"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SaleDate      time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod string          `gorm:"type:varchar(30)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:            m.ID,
		UserID:        m.UserID,
		SellerID:      m.SellerID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		ProductID:     m.ProductID,
		Description:   m.Description,
		TotalAmount:   m.TotalAmount,
		SaleDate:      entity.Day(m.SaleDate),
		PaymentMethod: m.PaymentMethod,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:            sale.ID,
		UserID:        sale.UserID,
		SellerID:      sale.SellerID,
		CustomerID:    sale.CustomerID,
		CustomerName:  sale.CustomerName,
		ProductID:     sale.ProductID,
		Description:   sale.Description,
		TotalAmount:   sale.TotalAmount,
		SaleDate:      sale.SaleDate,
		PaymentMethod: sale.PaymentMethod,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
}
