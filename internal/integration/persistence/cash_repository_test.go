package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestCashRepository_Snapshots(t *testing.T) {
	ctx := context.Background()
	repo := NewCashRepository(newTestDB(t))
	userID := uuid.New()

	first, err := repo.CreateSnapshotIfAbsent(ctx, entity.NewCashSnapshot(userID, day("2025-03-10"), decimal.NewFromInt(100)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("second create returns the stored row", func(t *testing.T) {
		again, err := repo.CreateSnapshotIfAbsent(ctx, entity.NewCashSnapshot(userID, day("2025-03-10"), decimal.NewFromInt(999)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.ID != first.ID || !again.OpeningBalance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected the first snapshot, got %+v", again)
		}
	})

	t.Run("apply delta", func(t *testing.T) {
		if err := repo.ApplyDelta(ctx, first.ID, decimal.RequireFromString("50.50"), decimal.NewFromInt(20)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, err := repo.FindSnapshotByDate(ctx, userID, day("2025-03-10"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.InflowTotal.Equal(decimal.RequireFromString("50.50")) ||
			!stored.OutflowTotal.Equal(decimal.NewFromInt(20)) ||
			!stored.ClosingBalance.Equal(decimal.RequireFromString("130.50")) {
			t.Errorf("unexpected totals: %+v", stored)
		}

		err = repo.ApplyDelta(ctx, uuid.New(), decimal.NewFromInt(1), decimal.Zero)
		if !errors.Is(err, domainerror.ErrSnapshotNotFound) {
			t.Errorf("expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("shift later balances", func(t *testing.T) {
		later, err := repo.CreateSnapshotIfAbsent(ctx, entity.NewCashSnapshot(userID, day("2025-03-12"), decimal.RequireFromString("130.50")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.ShiftBalancesAfter(ctx, userID, day("2025-03-10"), decimal.NewFromInt(-30)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snapshots, err := repo.ListSnapshots(ctx, userID, day("2025-03-01"), day("2025-03-31"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snapshots) != 2 || snapshots[0].ID != first.ID || snapshots[1].ID != later.ID {
			t.Fatalf("expected both snapshots in date order, got %d", len(snapshots))
		}
		if !snapshots[0].OpeningBalance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected the shift date itself untouched, got %s", snapshots[0].OpeningBalance)
		}
		if !snapshots[1].OpeningBalance.Equal(decimal.RequireFromString("100.50")) ||
			!snapshots[1].ClosingBalance.Equal(decimal.RequireFromString("100.50")) {
			t.Errorf("expected later snapshot shifted by -30, got %+v", snapshots[1])
		}
	})

	t.Run("latest before", func(t *testing.T) {
		latest, err := repo.FindLatestSnapshotBefore(ctx, userID, day("2025-03-12"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if latest.ID != first.ID {
			t.Errorf("expected snapshot of 2025-03-10, got %s", latest.Date)
		}

		_, err = repo.FindLatestSnapshotBefore(ctx, userID, day("2025-03-10"))
		if !errors.Is(err, domainerror.ErrSnapshotNotFound) {
			t.Errorf("expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		snapshots, err := repo.ListSnapshots(ctx, uuid.New(), day("2025-03-01"), day("2025-03-31"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snapshots) != 0 {
			t.Errorf("expected no snapshots, got %d", len(snapshots))
		}
	})
}

func TestCashRepository_Movements(t *testing.T) {
	ctx := context.Background()
	repo := NewCashRepository(newTestDB(t))
	userID := uuid.New()
	snapshot, err := repo.CreateSnapshotIfAbsent(ctx, entity.NewCashSnapshot(userID, day("2025-03-10"), decimal.Zero))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expenseID := uuid.New()
	commissionID := uuid.New()
	movement := func(date string, direction entity.MovementDirection, expense, commission *uuid.UUID) *entity.CashMovement {
		return &entity.CashMovement{
			ID:           uuid.New(),
			UserID:       userID,
			SnapshotID:   snapshot.ID,
			Date:         day(date),
			Direction:    direction,
			Amount:       decimal.NewFromInt(25),
			ExpenseID:    expense,
			CommissionID: commission,
			CreatedAt:    time.Now().UTC(),
		}
	}

	settlement := movement("2025-03-10", entity.MovementOutflow, &expenseID, &commissionID)
	plain := movement("2025-03-10", entity.MovementOutflow, &expenseID, nil)
	other := movement("2025-04-02", entity.MovementInflow, nil, nil)
	for _, m := range []*entity.CashMovement{settlement, plain, other} {
		if err := repo.CreateMovement(ctx, m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	tests := []struct {
		name     string
		link     entity.MovementLink
		expected int
	}{
		{"by expense", entity.MovementLink{ExpenseID: &expenseID}, 2},
		{"by expense and commission", entity.MovementLink{ExpenseID: &expenseID, CommissionID: &commissionID}, 1},
		{"unknown link", entity.MovementLink{SaleID: &commissionID}, 0},
		{"empty link", entity.MovementLink{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindMovementsByLink(ctx, userID, tt.link)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(found) != tt.expected {
				t.Errorf("expected %d movements, got %d", tt.expected, len(found))
			}
		})
	}

	march, err := repo.ListMovements(ctx, userID, day("2025-03-01"), day("2025-03-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(march) != 2 {
		t.Errorf("expected 2 movements in march, got %d", len(march))
	}

	if err := repo.DeleteMovement(ctx, plain.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteMovement(ctx, plain.ID); !errors.Is(err, domainerror.ErrMovementNotFound) {
		t.Errorf("expected ErrMovementNotFound, got %v", err)
	}
}

func TestCashRepository_NullTotalsReadAsZero(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCashRepository(db)
	userID := uuid.New()

	snapshot, err := repo.CreateSnapshotIfAbsent(ctx, entity.NewCashSnapshot(userID, day("2025-03-10"), decimal.NewFromInt(100)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := db.Exec("UPDATE cash_snapshots SET inflow_total = NULL, outflow_total = NULL WHERE id = ?", snapshot.ID).Error; err != nil {
		t.Fatalf("failed to null totals: %v", err)
	}

	output, err := cash.NewGetLedgerUseCase(repo, 0).Execute(ctx, cash.GetLedgerInput{
		UserID:    userID,
		StartDate: day("2025-03-10"),
		EndDate:   day("2025-03-10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(output.Days))
	}
	row := output.Days[0]
	if !row.HasSnapshot {
		t.Error("expected the stored snapshot to be read")
	}
	if !row.Inflows.IsZero() || !row.Outflows.IsZero() {
		t.Errorf("expected zero totals, got in=%s out=%s", row.Inflows, row.Outflows)
	}
	if !row.OpeningBalance.Equal(decimal.NewFromInt(100)) || !row.ClosingBalance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected open=close=100, got open=%s close=%s", row.OpeningBalance, row.ClosingBalance)
	}
	if !row.Balanced {
		t.Error("expected the day to balance")
	}
	if !output.TotalInflows.IsZero() || !output.ClosingBalance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("unexpected totals: in=%s close=%s", output.TotalInflows, output.ClosingBalance)
	}
}
