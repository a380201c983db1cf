package cash

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
)

// DefaultMaxLedgerDays bounds the ledger range when no limit is configured.
const DefaultMaxLedgerDays = 366

// GetLedgerInput represents the input for the cash ledger.
type GetLedgerInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetLedgerOutput holds one row per day plus the totals of the range.
type GetLedgerOutput struct {
	StartDate      time.Time
	EndDate        time.Time
	OpeningBalance decimal.Decimal
	TotalInflows   decimal.Decimal
	TotalOutflows  decimal.Decimal
	ClosingBalance decimal.Decimal
	Days           []entity.LedgerDay
}

// GetLedgerUseCase aggregates daily snapshots into a ledger.
type GetLedgerUseCase struct {
	cashRepo adapter.CashRepository
	maxDays  int
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(cashRepo adapter.CashRepository, maxDays int) *GetLedgerUseCase {
	if maxDays <= 0 {
		maxDays = DefaultMaxLedgerDays
	}
	return &GetLedgerUseCase{
		cashRepo: cashRepo,
		maxDays:  maxDays,
	}
}

// Execute reads the persisted snapshots of the range. Days without a snapshot
// carry the running balance with zero inflows and outflows.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, input GetLedgerInput) (*GetLedgerOutput, error) {
	startDate := entity.Day(input.StartDate)
	endDate := entity.Day(input.EndDate)

	if err := ValidateRange(startDate, endDate, uc.maxDays); err != nil {
		return nil, err
	}

	book := NewBook(uc.cashRepo, nil)
	opening, err := book.ClosingBefore(ctx, input.UserID, startDate)
	if err != nil {
		return nil, err
	}

	snapshots, err := uc.cashRepo.ListSnapshots(ctx, input.UserID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash snapshots: %w", err)
	}

	byDay := make(map[string]*entity.CashSnapshot, len(snapshots))
	for _, s := range snapshots {
		byDay[s.Date.Format(entity.DateLayout)] = s
	}

	output := &GetLedgerOutput{
		StartDate:      startDate,
		EndDate:        endDate,
		OpeningBalance: opening,
		TotalInflows:   decimal.Zero,
		TotalOutflows:  decimal.Zero,
		Days:           make([]entity.LedgerDay, 0, int(endDate.Sub(startDate).Hours()/24)+1),
	}

	running := opening
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		row := entity.LedgerDay{
			Date:           day,
			OpeningBalance: running,
			Inflows:        decimal.Zero,
			Outflows:       decimal.Zero,
			ClosingBalance: running,
			Balanced:       true,
		}

		if s, ok := byDay[day.Format(entity.DateLayout)]; ok {
			row.OpeningBalance = s.OpeningBalance
			row.Inflows = s.InflowTotal
			row.Outflows = s.OutflowTotal
			row.ClosingBalance = s.ClosingBalance
			row.HasSnapshot = true
			row.Balanced = s.ClosingBalance.Equal(s.ExpectedClosing())
			running = s.ClosingBalance
		}

		output.TotalInflows = output.TotalInflows.Add(row.Inflows)
		output.TotalOutflows = output.TotalOutflows.Add(row.Outflows)
		output.Days = append(output.Days, row)
	}
	output.ClosingBalance = running

	return output, nil
}
