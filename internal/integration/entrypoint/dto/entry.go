package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// RecurrenceRequest is the recurrence part of expense and income bodies.
type RecurrenceRequest struct {
	Recurring bool    `json:"recurring"`
	Frequency *string `json:"frequency,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
}

// ToRecurrence converts the request fields to a domain Recurrence.
func (r RecurrenceRequest) ToRecurrence() entity.Recurrence {
	recurrence := entity.Recurrence{Recurring: r.Recurring}
	if r.Frequency != nil {
		frequency := entity.Frequency(*r.Frequency)
		recurrence.Frequency = &frequency
	}
	return recurrence
}

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date" binding:"required"`
	Paid          bool            `json:"paid"`
	PaymentDate   *string         `json:"payment_date,omitempty"`
	CategoryID    *string         `json:"category_id,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	RecurrenceRequest
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Description   *string          `json:"description,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	DueDate       *string          `json:"due_date,omitempty"`
	PaymentDate   *string          `json:"payment_date,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	ClearSupplier bool             `json:"clear_supplier,omitempty"`
	SupplierName  *string          `json:"supplier_name,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Tags          *[]string        `json:"tags,omitempty"`
	Recurring     *bool            `json:"recurring,omitempty"`
	Frequency     *string          `json:"frequency,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
}

// PayExpenseRequest represents the optional body of POST /expenses/:id/pay.
type PayExpenseRequest struct {
	PaymentDate *string `json:"payment_date,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string            `json:"id"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	DueDate       string            `json:"due_date"`
	PaymentDate   *string           `json:"payment_date"`
	Paid          bool              `json:"paid"`
	CategoryID    *string           `json:"category_id"`
	Category      *CategoryResponse `json:"category,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	Recurring     bool              `json:"recurring"`
	Frequency     *string           `json:"frequency"`
	SupplierID    *string           `json:"supplier_id,omitempty"`
	SupplierName  string            `json:"supplier_name,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Tags          []string          `json:"tags"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    decimal.Decimal   `json:"total"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID.String(),
		Description:   e.Description,
		Amount:        e.Amount,
		DueDate:       formatDate(e.DueDate),
		PaymentDate:   formatOptionalDate(e.PaymentDate),
		Paid:          e.Paid,
		CategoryID:    optionalUUID(e.CategoryID),
		PaymentMethod: e.PaymentMethod,
		Recurring:     e.Recurrence.Recurring,
		Frequency:     frequencyOf(e.Recurrence),
		SupplierID:    optionalUUID(e.SupplierID),
		SupplierName:  e.SupplierName,
		Notes:         e.Notes,
		Tags:          tagsOf(e.Tags),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToExpenseListResponse converts expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, len(expenses)),
		Total:    decimal.Zero,
	}
	for i, e := range expenses {
		response.Expenses[i] = ToExpenseResponse(e)
		response.Total = response.Total.Add(e.Amount)
	}
	return response
}

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date" binding:"required"`
	CategoryID    *string         `json:"category_id,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	RecurrenceRequest
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID            string            `json:"id"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	Date          string            `json:"date"`
	CategoryID    *string           `json:"category_id"`
	Category      *CategoryResponse `json:"category,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	Recurring     bool              `json:"recurring"`
	Frequency     *string           `json:"frequency"`
	Notes         string            `json:"notes,omitempty"`
	Tags          []string          `json:"tags"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   decimal.Decimal  `json:"total"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:            i.ID.String(),
		Description:   i.Description,
		Amount:        i.Amount,
		Date:          formatDate(i.Date),
		CategoryID:    optionalUUID(i.CategoryID),
		PaymentMethod: i.PaymentMethod,
		Recurring:     i.Recurrence.Recurring,
		Frequency:     frequencyOf(i.Recurrence),
		Notes:         i.Notes,
		Tags:          tagsOf(i.Tags),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// ToIncomeListResponse converts incomes to an IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	response := IncomeListResponse{
		Incomes: make([]IncomeResponse, len(incomes)),
		Total:   decimal.Zero,
	}
	for idx, i := range incomes {
		response.Incomes[idx] = ToIncomeResponse(i)
		response.Total = response.Total.Add(i.Amount)
	}
	return response
}

func frequencyOf(r entity.Recurrence) *string {
	if r.Frequency == nil {
		return nil
	}
	s := string(*r.Frequency)
	return &s
}

func tagsOf(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
