package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a person the store sells to.
type Customer struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     string
	Phone     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewCustomer creates a new Customer entity.
func NewCustomer(userID uuid.UUID, name, email, phone string) *Customer {
	now := time.Now().UTC()

	return &Customer{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Supplier is a person or business the store buys stock or services from.
// Consignors are suppliers too.
type Supplier struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     string
	Phone     string
	Document  string // CPF or CNPJ, free-form
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewSupplier creates a new Supplier entity.
func NewSupplier(userID uuid.UUID, name, email, phone, document string) *Supplier {
	now := time.Now().UTC()

	return &Supplier{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Document:  document,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
