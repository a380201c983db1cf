package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// RecalculateSnapshotsRequest represents the request body for snapshot reconciliation.
type RecalculateSnapshotsRequest struct {
	FromDate string `json:"from_date" binding:"required"`
}

// RecalculateSnapshotsResponse reports the reconciliation result.
type RecalculateSnapshotsResponse struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
}

// LedgerDayResponse is one day of the ledger.
type LedgerDayResponse struct {
	Date           string          `json:"date"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Inflows        decimal.Decimal `json:"inflows"`
	Outflows       decimal.Decimal `json:"outflows"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	HasSnapshot    bool            `json:"has_snapshot"`
	Balanced       bool            `json:"balanced"`
}

// LedgerResponse represents the cash ledger of a date range.
type LedgerResponse struct {
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	OpeningBalance decimal.Decimal     `json:"opening_balance"`
	TotalInflows   decimal.Decimal     `json:"total_inflows"`
	TotalOutflows  decimal.Decimal     `json:"total_outflows"`
	ClosingBalance decimal.Decimal     `json:"closing_balance"`
	Days           []LedgerDayResponse `json:"days"`
}

// ToLedgerResponse converts the ledger output to a LedgerResponse DTO.
func ToLedgerResponse(output *cash.GetLedgerOutput) LedgerResponse {
	response := LedgerResponse{
		StartDate:      formatDate(output.StartDate),
		EndDate:        formatDate(output.EndDate),
		OpeningBalance: output.OpeningBalance,
		TotalInflows:   output.TotalInflows,
		TotalOutflows:  output.TotalOutflows,
		ClosingBalance: output.ClosingBalance,
		Days:           make([]LedgerDayResponse, len(output.Days)),
	}
	for i, day := range output.Days {
		response.Days[i] = LedgerDayResponse{
			Date:           formatDate(day.Date),
			OpeningBalance: day.OpeningBalance,
			Inflows:        day.Inflows,
			Outflows:       day.Outflows,
			ClosingBalance: day.ClosingBalance,
			HasSnapshot:    day.HasSnapshot,
			Balanced:       day.Balanced,
		}
	}
	return response
}

// CashMovementResponse represents a single cash movement in API responses.
type CashMovementResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
	IncomeID      *string         `json:"income_id,omitempty"`
	ExpenseID     *string         `json:"expense_id,omitempty"`
	SaleID        *string         `json:"sale_id,omitempty"`
	CommissionID  *string         `json:"commission_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CashMovementListResponse represents the movements of a day.
type CashMovementListResponse struct {
	Movements []CashMovementResponse `json:"movements"`
}

// ToCashMovementResponse converts a domain CashMovement to a CashMovementResponse DTO.
func ToCashMovementResponse(m *entity.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		ID:            m.ID.String(),
		Date:          formatDate(m.Date),
		Direction:     string(m.Direction),
		Amount:        m.Amount,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		IncomeID:      optionalUUID(m.IncomeID),
		ExpenseID:     optionalUUID(m.ExpenseID),
		SaleID:        optionalUUID(m.SaleID),
		CommissionID:  optionalUUID(m.CommissionID),
		CreatedAt:     m.CreatedAt,
	}
}

// ToCashMovementListResponse converts movements to a CashMovementListResponse.
func ToCashMovementListResponse(movements []*entity.CashMovement) CashMovementListResponse {
	items := make([]CashMovementResponse, len(movements))
	for i, m := range movements {
		items[i] = ToCashMovementResponse(m)
	}
	return CashMovementListResponse{Movements: items}
}
