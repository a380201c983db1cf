package cash

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestGetLedger_EmptyRangeIsZeroFilled(t *testing.T) {
	uc := NewGetLedgerUseCase(usecasetest.NewCashRepository(), 0)

	output, err := uc.Execute(context.Background(), GetLedgerInput{
		UserID:    uuid.New(),
		StartDate: day("2025-02-26"),
		EndDate:   day("2025-03-02"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(output.Days))
	}
	for i, d := range output.Days {
		want := day("2025-02-26").AddDate(0, 0, i)
		if !d.Date.Equal(want) {
			t.Errorf("row %d: expected date %s, got %s", i, want.Format(entity.DateLayout), d.Date.Format(entity.DateLayout))
		}
		for name, v := range map[string]decimal.Decimal{
			"opening":  d.OpeningBalance,
			"inflows":  d.Inflows,
			"outflows": d.Outflows,
			"closing":  d.ClosingBalance,
		} {
			if !v.IsZero() {
				t.Errorf("row %d: expected zero %s, got %s", i, name, v)
			}
		}
		if d.HasSnapshot {
			t.Errorf("row %d: expected no snapshot", i)
		}
	}
	if !output.OpeningBalance.IsZero() || !output.ClosingBalance.IsZero() {
		t.Errorf("expected zero range balances, got %s / %s", output.OpeningBalance, output.ClosingBalance)
	}
}

func TestGetLedger_ReadsSnapshotsAndCarriesGaps(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := usecasetest.NewCashRepository()

	before := entity.NewCashSnapshot(userID, day("2025-03-01"), amount("0"))
	before.InflowTotal = amount("40")
	before.ClosingBalance = amount("40")
	repo.PutSnapshot(before)

	first := entity.NewCashSnapshot(userID, day("2025-03-05"), amount("40"))
	first.InflowTotal = amount("100")
	first.OutflowTotal = amount("25")
	first.ClosingBalance = amount("115")
	repo.PutSnapshot(first)

	// Stored closing disagrees with its totals.
	drifted := entity.NewCashSnapshot(userID, day("2025-03-07"), amount("115"))
	drifted.OutflowTotal = amount("15")
	drifted.ClosingBalance = amount("90")
	repo.PutSnapshot(drifted)

	output, err := NewGetLedgerUseCase(repo, 31).Execute(ctx, GetLedgerInput{
		UserID:    userID,
		StartDate: day("2025-03-04"),
		EndDate:   day("2025-03-08"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		date        string
		opening     string
		in          string
		out         string
		closing     string
		hasSnapshot bool
		balanced    bool
	}{
		{"2025-03-04", "40", "0", "0", "40", false, true},
		{"2025-03-05", "40", "100", "25", "115", true, true},
		{"2025-03-06", "115", "0", "0", "115", false, true},
		{"2025-03-07", "115", "0", "15", "90", true, false},
		{"2025-03-08", "90", "0", "0", "90", false, true},
	}
	if len(output.Days) != len(tests) {
		t.Fatalf("expected %d days, got %d", len(tests), len(output.Days))
	}
	for i, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d := output.Days[i]
			if !d.OpeningBalance.Equal(amount(tt.opening)) || !d.Inflows.Equal(amount(tt.in)) ||
				!d.Outflows.Equal(amount(tt.out)) || !d.ClosingBalance.Equal(amount(tt.closing)) {
				t.Errorf("expected %s/%s/%s/%s, got %s/%s/%s/%s",
					tt.opening, tt.in, tt.out, tt.closing,
					d.OpeningBalance, d.Inflows, d.Outflows, d.ClosingBalance)
			}
			if d.HasSnapshot != tt.hasSnapshot {
				t.Errorf("expected has snapshot %v, got %v", tt.hasSnapshot, d.HasSnapshot)
			}
			if d.Balanced != tt.balanced {
				t.Errorf("expected balanced %v, got %v", tt.balanced, d.Balanced)
			}
		})
	}

	if !output.OpeningBalance.Equal(amount("40")) {
		t.Errorf("expected range opening 40, got %s", output.OpeningBalance)
	}
	if !output.TotalInflows.Equal(amount("100")) || !output.TotalOutflows.Equal(amount("40")) {
		t.Errorf("expected totals 100/40, got %s/%s", output.TotalInflows, output.TotalOutflows)
	}
	if !output.ClosingBalance.Equal(amount("90")) {
		t.Errorf("expected range closing 90, got %s", output.ClosingBalance)
	}
}

func TestGetLedger_RejectsOversizedRange(t *testing.T) {
	uc := NewGetLedgerUseCase(usecasetest.NewCashRepository(), 7)

	_, err := uc.Execute(context.Background(), GetLedgerInput{
		UserID:    uuid.New(),
		StartDate: day("2025-03-01"),
		EndDate:   day("2025-03-08"),
	})
	if !errors.Is(err, domainerror.ErrDateRangeTooLarge) {
		t.Errorf("expected ErrDateRangeTooLarge, got %v", err)
	}
}
