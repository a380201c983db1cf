package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a bill or outgoing payment of the store.
type Expense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	DueDate       time.Time
	PaymentDate   *time.Time // nil until paid
	Paid          bool
	CategoryID    *uuid.UUID
	PaymentMethod string
	Recurrence    Recurrence
	SupplierID    *uuid.UUID
	SupplierName  string
	Notes         string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NewExpense creates an unpaid Expense entity.
func NewExpense(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	dueDate time.Time,
	categoryID *uuid.UUID,
	paymentMethod string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:            uuid.New(),
		UserID:        userID,
		Description:   description,
		Amount:        amount.Round(2),
		DueDate:       Day(dueDate),
		CategoryID:    categoryID,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MarkPaid flags the expense as paid on the given day.
func (e *Expense) MarkPaid(paymentDate time.Time) {
	day := Day(paymentDate)
	e.Paid = true
	e.PaymentDate = &day
	e.UpdatedAt = time.Now().UTC()
}

// MarkUnpaid clears the paid flag and payment date.
func (e *Expense) MarkUnpaid() {
	e.Paid = false
	e.PaymentDate = nil
	e.UpdatedAt = time.Now().UTC()
}
