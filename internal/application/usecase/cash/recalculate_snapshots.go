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

// RecalculateSnapshotsInput represents the input for snapshot reconciliation.
type RecalculateSnapshotsInput struct {
	UserID   uuid.UUID
	FromDate time.Time
}

// RecalculateSnapshotsOutput reports how many snapshots were inspected and rewritten.
type RecalculateSnapshotsOutput struct {
	Checked int
	Updated int
}

// RecalculateSnapshotsUseCase rebuilds snapshot totals from their movements.
type RecalculateSnapshotsUseCase struct {
	cashRepo adapter.CashRepository
	cache    adapter.ReportCache
}

// NewRecalculateSnapshotsUseCase creates a new RecalculateSnapshotsUseCase instance.
func NewRecalculateSnapshotsUseCase(cashRepo adapter.CashRepository, cache adapter.ReportCache) *RecalculateSnapshotsUseCase {
	return &RecalculateSnapshotsUseCase{
		cashRepo: cashRepo,
		cache:    cache,
	}
}

// Execute walks snapshots from FromDate onwards, recomputing inflows and outflows
// from movements and carrying each closing balance into the next opening balance.
func (uc *RecalculateSnapshotsUseCase) Execute(ctx context.Context, input RecalculateSnapshotsInput) (*RecalculateSnapshotsOutput, error) {
	if input.FromDate.IsZero() {
		return nil, ValidateRange(input.FromDate, input.FromDate, 0)
	}
	from := entity.Day(input.FromDate)

	book := NewBook(uc.cashRepo, uc.cache)
	opening, err := book.ClosingBefore(ctx, input.UserID, from)
	if err != nil {
		return nil, err
	}

	snapshots, err := uc.cashRepo.ListSnapshotsFrom(ctx, input.UserID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash snapshots: %w", err)
	}

	output := &RecalculateSnapshotsOutput{}
	if len(snapshots) == 0 {
		return output, nil
	}

	last := snapshots[len(snapshots)-1].Date
	movements, err := uc.cashRepo.ListMovements(ctx, input.UserID, from, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash movements: %w", err)
	}

	type totals struct{ in, out decimal.Decimal }
	byDay := make(map[string]*totals)
	for _, m := range movements {
		key := m.Date.Format(entity.DateLayout)
		t, ok := byDay[key]
		if !ok {
			t = &totals{in: decimal.Zero, out: decimal.Zero}
			byDay[key] = t
		}
		in, out := split(m)
		t.in = t.in.Add(in)
		t.out = t.out.Add(out)
	}

	for _, s := range snapshots {
		output.Checked++

		in, out := decimal.Zero, decimal.Zero
		if t, ok := byDay[s.Date.Format(entity.DateLayout)]; ok {
			in, out = t.in, t.out
		}
		closing := opening.Add(in).Sub(out)

		if !s.OpeningBalance.Equal(opening) || !s.InflowTotal.Equal(in) ||
			!s.OutflowTotal.Equal(out) || !s.ClosingBalance.Equal(closing) {
			s.OpeningBalance = opening
			s.InflowTotal = in
			s.OutflowTotal = out
			s.ClosingBalance = closing
			s.UpdatedAt = time.Now().UTC()
			if err := uc.cashRepo.UpdateSnapshot(ctx, s); err != nil {
				return nil, fmt.Errorf("failed to update cash snapshot: %w", err)
			}
			output.Updated++
		}

		opening = closing
	}

	if output.Updated > 0 {
		book.Invalidate(ctx, input.UserID)
	}

	return output, nil
}
