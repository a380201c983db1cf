// Package cash contains the daily cash ledger use cases.
package cash

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// Book keeps daily snapshots in step with cash movements.
//
// Movements are the source of truth. Snapshot totals are derived from them, so a
// failure while adjusting a snapshot after the movement is written is logged and
// left for RecalculateSnapshotsUseCase to repair.
type Book struct {
	cashRepo      adapter.CashRepository
	cache         adapter.ReportCache
	paymentMethod string
}

// NewBook creates a new Book instance.
func NewBook(cashRepo adapter.CashRepository, cache adapter.ReportCache) *Book {
	return &Book{
		cashRepo: cashRepo,
		cache:    cache,
	}
}

// WithDefaultPaymentMethod sets the payment method given to movements recorded without one.
func (b *Book) WithDefaultPaymentMethod(method string) *Book {
	b.paymentMethod = method
	return b
}

// PaymentMethodOr returns method, or the default payment method when it is empty.
func (b *Book) PaymentMethodOr(method string) string {
	if method == "" {
		return b.paymentMethod
	}
	return method
}

// ResolveSnapshot returns the snapshot of the given day, creating it when missing
// with the closing balance of the latest earlier snapshot as opening balance.
func (b *Book) ResolveSnapshot(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.CashSnapshot, error) {
	day := entity.Day(date)

	snapshot, err := b.cashRepo.FindSnapshotByDate(ctx, userID, day)
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, domainerror.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to find cash snapshot: %w", err)
	}

	opening, err := b.ClosingBefore(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	snapshot, err = b.cashRepo.CreateSnapshotIfAbsent(ctx, entity.NewCashSnapshot(userID, day, opening))
	if err != nil {
		return nil, fmt.Errorf("failed to create cash snapshot: %w", err)
	}
	return snapshot, nil
}

// ClosingBefore returns the closing balance of the latest snapshot before date, or zero.
func (b *Book) ClosingBefore(ctx context.Context, userID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	previous, err := b.cashRepo.FindLatestSnapshotBefore(ctx, userID, entity.Day(date))
	if err != nil {
		if errors.Is(err, domainerror.ErrSnapshotNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to find previous cash snapshot: %w", err)
	}
	return previous.ClosingBalance, nil
}

// RecordMovement books a movement against the snapshot and carries its effect
// forward to later snapshots.
func (b *Book) RecordMovement(ctx context.Context, snapshot *entity.CashSnapshot, movement *entity.CashMovement) error {
	movement.UserID = snapshot.UserID
	movement.SnapshotID = snapshot.ID
	movement.Date = snapshot.Date
	if movement.ID == uuid.Nil {
		movement.ID = uuid.New()
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now().UTC()
	}
	movement.PaymentMethod = b.PaymentMethodOr(movement.PaymentMethod)

	if err := b.cashRepo.CreateMovement(ctx, movement); err != nil {
		return fmt.Errorf("failed to create cash movement: %w", err)
	}

	inflow, outflow := split(movement)
	snapshot.InflowTotal = snapshot.InflowTotal.Add(inflow)
	snapshot.OutflowTotal = snapshot.OutflowTotal.Add(outflow)
	snapshot.ClosingBalance = snapshot.ClosingBalance.Add(movement.Delta())

	b.applyToSnapshots(ctx, snapshot.UserID, snapshot.ID, snapshot.Date, inflow, outflow, movement.Delta())
	b.Invalidate(ctx, snapshot.UserID)
	return nil
}

// Record resolves the snapshot of date and books the movement against it.
func (b *Book) Record(ctx context.Context, userID uuid.UUID, date time.Time, movement *entity.CashMovement) error {
	snapshot, err := b.ResolveSnapshot(ctx, userID, date)
	if err != nil {
		return err
	}
	return b.RecordMovement(ctx, snapshot, movement)
}

// RemoveMovement deletes a movement and reverses its effect on the snapshots.
func (b *Book) RemoveMovement(ctx context.Context, movement *entity.CashMovement) error {
	if err := b.cashRepo.DeleteMovement(ctx, movement.ID); err != nil {
		return fmt.Errorf("failed to delete cash movement: %w", err)
	}

	inflow, outflow := split(movement)
	b.applyToSnapshots(ctx, movement.UserID, movement.SnapshotID, movement.Date, inflow.Neg(), outflow.Neg(), movement.Delta().Neg())
	b.Invalidate(ctx, movement.UserID)
	return nil
}

// MovementsFor returns the movements tied to the linked document.
func (b *Book) MovementsFor(ctx context.Context, userID uuid.UUID, link entity.MovementLink) ([]*entity.CashMovement, error) {
	movements, err := b.cashRepo.FindMovementsByLink(ctx, userID, link)
	if err != nil {
		return nil, fmt.Errorf("failed to find cash movements: %w", err)
	}
	return movements, nil
}

// RemoveMovementsFor deletes every movement tied to the linked document.
// It returns the removed movements.
func (b *Book) RemoveMovementsFor(ctx context.Context, userID uuid.UUID, link entity.MovementLink) ([]*entity.CashMovement, error) {
	movements, err := b.MovementsFor(ctx, userID, link)
	if err != nil {
		return nil, err
	}

	removed := make([]*entity.CashMovement, 0, len(movements))
	for _, movement := range movements {
		if err := b.RemoveMovement(ctx, movement); err != nil {
			return removed, err
		}
		removed = append(removed, movement)
	}
	return removed, nil
}

// Invalidate drops cached reports of the user. Failures are logged only.
func (b *Book) Invalidate(ctx context.Context, userID uuid.UUID) {
	if b.cache == nil {
		return
	}
	if err := b.cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate report cache", "user_id", userID, "error", err)
	}
}

func (b *Book) applyToSnapshots(
	ctx context.Context,
	userID, snapshotID uuid.UUID,
	date time.Time,
	inflow, outflow, delta decimal.Decimal,
) {
	if err := b.cashRepo.ApplyDelta(ctx, snapshotID, inflow, outflow); err != nil {
		slog.Error("Failed to update cash snapshot totals",
			"snapshot_id", snapshotID,
			"error", err,
		)
		return
	}

	if delta.IsZero() {
		return
	}
	if err := b.cashRepo.ShiftBalancesAfter(ctx, userID, date, delta); err != nil {
		slog.Error("Failed to carry balance to later snapshots",
			"user_id", userID,
			"date", date.Format(entity.DateLayout),
			"error", err,
		)
	}
}

// split returns the movement amount as (inflow, outflow).
func split(movement *entity.CashMovement) (decimal.Decimal, decimal.Decimal) {
	if movement.Direction == entity.MovementOutflow {
		return decimal.Zero, movement.Amount
	}
	return movement.Amount, decimal.Zero
}
