package cash

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
)

func TestRecalculateSnapshots_RepairsDrift(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := usecasetest.NewCashRepository()
	cache := usecasetest.NewReportCache()
	book := NewBook(repo, nil)

	if err := book.Record(ctx, userID, day("2025-03-01"), inflow("100", uuid.New())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := book.Record(ctx, userID, day("2025-03-03"), outflow("40", uuid.New())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A movement whose snapshot update was lost.
	lost := inflow("10", uuid.New())
	lost.ID = uuid.New()
	lost.UserID = userID
	lost.Date = day("2025-03-03")
	lost.SnapshotID = repo.Snapshot(userID, day("2025-03-03")).ID
	repo.PutMovement(lost)

	output, err := NewRecalculateSnapshotsUseCase(repo, cache).Execute(ctx, RecalculateSnapshotsInput{
		UserID:   userID,
		FromDate: day("2025-03-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Checked != 2 || output.Updated != 1 {
		t.Errorf("expected 2 checked and 1 updated, got %d and %d", output.Checked, output.Updated)
	}
	assertBalances(t, repo.Snapshot(userID, day("2025-03-01")), "0", "100", "0", "100")
	assertBalances(t, repo.Snapshot(userID, day("2025-03-03")), "100", "10", "40", "70")
	if cache.Invalidations[userID] != 1 {
		t.Errorf("expected cache invalidation, got %d", cache.Invalidations[userID])
	}

	t.Run("second run changes nothing", func(t *testing.T) {
		output, err := NewRecalculateSnapshotsUseCase(repo, cache).Execute(ctx, RecalculateSnapshotsInput{
			UserID:   userID,
			FromDate: day("2025-03-01"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Updated != 0 {
			t.Errorf("expected no updates, got %d", output.Updated)
		}
	})
}

func TestRecalculateSnapshots_RequiresFromDate(t *testing.T) {
	_, err := NewRecalculateSnapshotsUseCase(usecasetest.NewCashRepository(), nil).Execute(context.Background(), RecalculateSnapshotsInput{
		UserID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error for missing from date")
	}
}
