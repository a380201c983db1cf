package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/persistence/model"
)

// cashRepository implements the adapter.CashRepository interface.
type cashRepository struct {
	db *gorm.DB
}

// NewCashRepository creates a new cash repository instance.
func NewCashRepository(db *gorm.DB) adapter.CashRepository {
	return &cashRepository{
		db: db,
	}
}

// FindSnapshotByDate retrieves the snapshot of a calendar day.
func (r *cashRepository) FindSnapshotByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.CashSnapshot, error) {
	var snapshotModel model.CashSnapshotModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, entity.Day(date)).
		First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, result.Error
	}
	return snapshotModel.ToEntity(), nil
}

// FindLatestSnapshotBefore retrieves the closest snapshot strictly before date.
func (r *cashRepository) FindLatestSnapshotBefore(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.CashSnapshot, error) {
	var snapshotModel model.CashSnapshotModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date < ?", userID, entity.Day(date)).
		Order("date DESC").
		First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, result.Error
	}
	return snapshotModel.ToEntity(), nil
}

// CreateSnapshotIfAbsent inserts the snapshot and re-reads the stored row, so a
// concurrent insert of the same day resolves to the winner.
func (r *cashRepository) CreateSnapshotIfAbsent(ctx context.Context, snapshot *entity.CashSnapshot) (*entity.CashSnapshot, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(model.CashSnapshotFromEntity(snapshot))
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindSnapshotByDate(ctx, snapshot.UserID, snapshot.Date)
}

// ListSnapshots retrieves snapshots within the inclusive range ordered by date.
func (r *cashRepository) ListSnapshots(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CashSnapshot, error) {
	var snapshotModels []model.CashSnapshotModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, entity.Day(startDate), entity.Day(endDate)).
		Order("date ASC").
		Find(&snapshotModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSnapshots(snapshotModels), nil
}

// ListSnapshotsFrom retrieves snapshots on or after date ordered by date.
func (r *cashRepository) ListSnapshotsFrom(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.CashSnapshot, error) {
	var snapshotModels []model.CashSnapshotModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, entity.Day(date)).
		Order("date ASC").
		Find(&snapshotModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSnapshots(snapshotModels), nil
}

// UpdateSnapshot overwrites the totals of a snapshot.
func (r *cashRepository) UpdateSnapshot(ctx context.Context, snapshot *entity.CashSnapshot) error {
	return r.db.WithContext(ctx).Save(model.CashSnapshotFromEntity(snapshot)).Error
}

// ApplyDelta increments the totals in place so concurrent movements on the same
// day do not overwrite each other.
func (r *cashRepository) ApplyDelta(ctx context.Context, snapshotID uuid.UUID, inflow, outflow decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.CashSnapshotModel{}).
		Where("id = ?", snapshotID).
		Updates(map[string]any{
			"inflow_total":    gorm.Expr("COALESCE(inflow_total, 0) + ?", inflow),
			"outflow_total":   gorm.Expr("COALESCE(outflow_total, 0) + ?", outflow),
			"closing_balance": gorm.Expr("COALESCE(closing_balance, 0) + ? - ?", inflow, outflow),
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSnapshotNotFound
	}
	return nil
}

// ShiftBalancesAfter adds delta to opening and closing balances of every later snapshot.
func (r *cashRepository) ShiftBalancesAfter(ctx context.Context, userID uuid.UUID, date time.Time, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&model.CashSnapshotModel{}).
		Where("user_id = ? AND date > ?", userID, entity.Day(date)).
		Updates(map[string]any{
			"opening_balance": gorm.Expr("COALESCE(opening_balance, 0) + ?", delta),
			"closing_balance": gorm.Expr("COALESCE(closing_balance, 0) + ?", delta),
			"updated_at":      time.Now().UTC(),
		}).Error
}

// CreateMovement inserts a cash movement.
func (r *cashRepository) CreateMovement(ctx context.Context, movement *entity.CashMovement) error {
	return r.db.WithContext(ctx).Create(model.CashMovementFromEntity(movement)).Error
}

// DeleteMovement removes a cash movement.
func (r *cashRepository) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CashMovementModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMovementNotFound
	}
	return nil
}

// FindMovementsByLink retrieves the movements matching every set field of link.
// An empty link matches nothing.
func (r *cashRepository) FindMovementsByLink(ctx context.Context, userID uuid.UUID, link entity.MovementLink) ([]*entity.CashMovement, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	linked := false
	for column, id := range map[string]*uuid.UUID{
		"income_id":     link.IncomeID,
		"expense_id":    link.ExpenseID,
		"sale_id":       link.SaleID,
		"commission_id": link.CommissionID,
	} {
		if id != nil {
			query = query.Where(column+" = ?", *id)
			linked = true
		}
	}
	if !linked {
		return []*entity.CashMovement{}, nil
	}

	var movementModels []model.CashMovementModel
	if err := query.Order("created_at ASC").Find(&movementModels).Error; err != nil {
		return nil, err
	}
	return toMovements(movementModels), nil
}

// ListMovements retrieves movements within the inclusive range ordered by date.
func (r *cashRepository) ListMovements(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CashMovement, error) {
	var movementModels []model.CashMovementModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, entity.Day(startDate), entity.Day(endDate)).
		Order("date ASC").
		Order("created_at ASC").
		Find(&movementModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMovements(movementModels), nil
}

func toSnapshots(models []model.CashSnapshotModel) []*entity.CashSnapshot {
	snapshots := make([]*entity.CashSnapshot, len(models))
	for i, sm := range models {
		snapshots[i] = sm.ToEntity()
	}
	return snapshots
}

func toMovements(models []model.CashMovementModel) []*entity.CashMovement {
	movements := make([]*entity.CashMovement, len(models))
	for i, mm := range models {
		movements[i] = mm.ToEntity()
	}
	return movements
}
