package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus tracks whether a stock item can still be sold.
type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusSold      ProductStatus = "sold"
)

// IsValid checks if the product status is valid.
func (s ProductStatus) IsValid() bool {
	return s == ProductStatusAvailable || s == ProductStatusSold
}

// Product is a single stock item. Second-hand pieces are unique, so a product
// is sold at most once.
type Product struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	SKU         string
	SupplierID  *uuid.UUID
	CostPrice   decimal.Decimal
	Price       decimal.Decimal
	Status      ProductStatus
	SaleID      *uuid.UUID
	SoldAt      *time.Time
	AcquiredOn  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates an available Product entity.
func NewProduct(userID uuid.UUID, name string, price, costPrice decimal.Decimal, acquiredOn time.Time) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		CostPrice:  costPrice.Round(2),
		Price:      price.Round(2),
		Status:     ProductStatusAvailable,
		AcquiredOn: Day(acquiredOn),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Available reports whether the product can be sold.
func (p *Product) Available() bool {
	return p.Status == ProductStatusAvailable
}

// MarkSold ties the product to the sale that sold it.
func (p *Product) MarkSold(saleID uuid.UUID, soldOn time.Time) {
	day := Day(soldOn)
	p.Status = ProductStatusSold
	p.SaleID = &saleID
	p.SoldAt = &day
	p.UpdatedAt = time.Now().UTC()
}

// MarkAvailable puts the product back in stock.
func (p *Product) MarkAvailable() {
	p.Status = ProductStatusAvailable
	p.SaleID = nil
	p.SoldAt = nil
	p.UpdatedAt = time.Now().UTC()
}
