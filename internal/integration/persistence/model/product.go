package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(120);not null"`
	Description string          `gorm:"type:text"`
	SKU         string          `gorm:"type:varchar(50);index"`
	SupplierID  *uuid.UUID      `gorm:"type:uuid;index"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"type:varchar(10);not null;default:'available';index"`
	SaleID      *uuid.UUID      `gorm:"type:uuid;index"`
	SoldAt      *time.Time      `gorm:"type:date"`
	AcquiredOn  time.Time       `gorm:"type:date;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	p := &entity.Product{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		SKU:         m.SKU,
		SupplierID:  m.SupplierID,
		CostPrice:   m.CostPrice,
		Price:       m.Price,
		Status:      entity.ProductStatus(m.Status),
		SaleID:      m.SaleID,
		AcquiredOn:  entity.Day(m.AcquiredOn),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.SoldAt != nil {
		day := entity.Day(*m.SoldAt)
		p.SoldAt = &day
	}
	return p
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          product.ID,
		UserID:      product.UserID,
		Name:        product.Name,
		Description: product.Description,
		SKU:         product.SKU,
		SupplierID:  product.SupplierID,
		CostPrice:   product.CostPrice,
		Price:       product.Price,
		Status:      string(product.Status),
		SaleID:      product.SaleID,
		SoldAt:      product.SoldAt,
		AcquiredOn:  product.AcquiredOn,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
