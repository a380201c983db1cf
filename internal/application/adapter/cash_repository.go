package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
)

// CashRepository defines persistence for daily snapshots and cash movements.
type CashRepository interface {
	// FindSnapshotByDate retrieves the snapshot of a calendar day.
	FindSnapshotByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.CashSnapshot, error)

	// FindLatestSnapshotBefore retrieves the closest snapshot strictly before date.
	FindLatestSnapshotBefore(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.CashSnapshot, error)

	// CreateSnapshotIfAbsent inserts the snapshot unless the day already has one,
	// and returns the stored row either way.
	CreateSnapshotIfAbsent(ctx context.Context, snapshot *entity.CashSnapshot) (*entity.CashSnapshot, error)

	// ListSnapshots retrieves snapshots within the inclusive range ordered by date.
	ListSnapshots(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CashSnapshot, error)

	// ListSnapshotsFrom retrieves snapshots on or after date ordered by date.
	ListSnapshotsFrom(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.CashSnapshot, error)

	// UpdateSnapshot overwrites the totals of a snapshot.
	UpdateSnapshot(ctx context.Context, snapshot *entity.CashSnapshot) error

	// ApplyDelta adds to the inflow and outflow totals of a snapshot and
	// adjusts its closing balance accordingly.
	ApplyDelta(ctx context.Context, snapshotID uuid.UUID, inflow, outflow decimal.Decimal) error

	// ShiftBalancesAfter adds delta to opening and closing balances of every
	// snapshot of the user dated after date.
	ShiftBalancesAfter(ctx context.Context, userID uuid.UUID, date time.Time, delta decimal.Decimal) error

	// CreateMovement inserts a cash movement.
	CreateMovement(ctx context.Context, movement *entity.CashMovement) error

	// DeleteMovement removes a cash movement.
	DeleteMovement(ctx context.Context, id uuid.UUID) error

	// FindMovementsByLink retrieves the movements tied to a source document.
	FindMovementsByLink(ctx context.Context, userID uuid.UUID, link entity.MovementLink) ([]*entity.CashMovement, error)

	// ListMovements retrieves movements within the inclusive range ordered by date.
	ListMovements(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CashMovement, error)
}
