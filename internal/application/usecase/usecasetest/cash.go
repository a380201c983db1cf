package usecasetest

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// CashRepository is an in-memory adapter.CashRepository.
type CashRepository struct {
	failures
	mu        sync.Mutex
	snapshots map[uuid.UUID]entity.CashSnapshot
	movements map[uuid.UUID]entity.CashMovement
}

// NewCashRepository creates an empty CashRepository.
func NewCashRepository() *CashRepository {
	return &CashRepository{
		snapshots: make(map[uuid.UUID]entity.CashSnapshot),
		movements: make(map[uuid.UUID]entity.CashMovement),
	}
}

// PutSnapshot stores a snapshot as is, bypassing every check.
func (r *CashRepository) PutSnapshot(snapshot *entity.CashSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snapshot.ID] = *snapshot
}

// PutMovement stores a movement as is, bypassing every check.
func (r *CashRepository) PutMovement(movement *entity.CashMovement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements[movement.ID] = *movement
}

// Snapshot returns the stored snapshot of a day, or nil.
func (r *CashRepository) Snapshot(userID uuid.UUID, date time.Time) *entity.CashSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotOf(userID, entity.Day(date))
}

// Movements returns every stored movement of the user ordered by date.
func (r *CashRepository) Movements(userID uuid.UUID) []*entity.CashMovement {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.CashMovement, 0)
	for _, m := range r.movements {
		if m.UserID == userID {
			m := m
			result = append(result, &m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}

func (r *CashRepository) snapshotOf(userID uuid.UUID, day time.Time) *entity.CashSnapshot {
	for _, s := range r.snapshots {
		if s.UserID == userID && s.Date.Equal(day) {
			s := s
			return &s
		}
	}
	return nil
}

func (r *CashRepository) FindSnapshotByDate(_ context.Context, userID uuid.UUID, date time.Time) (*entity.CashSnapshot, error) {
	if err := r.failure("FindSnapshotByDate"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s := r.snapshotOf(userID, entity.Day(date)); s != nil {
		return s, nil
	}
	return nil, domainerror.ErrSnapshotNotFound
}

func (r *CashRepository) FindLatestSnapshotBefore(_ context.Context, userID uuid.UUID, date time.Time) (*entity.CashSnapshot, error) {
	if err := r.failure("FindLatestSnapshotBefore"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *entity.CashSnapshot
	for _, s := range r.snapshots {
		if s.UserID != userID || !s.Date.Before(date) {
			continue
		}
		if latest == nil || s.Date.After(latest.Date) {
			s := s
			latest = &s
		}
	}
	if latest == nil {
		return nil, domainerror.ErrSnapshotNotFound
	}
	return latest, nil
}

func (r *CashRepository) CreateSnapshotIfAbsent(_ context.Context, snapshot *entity.CashSnapshot) (*entity.CashSnapshot, error) {
	if err := r.failure("CreateSnapshotIfAbsent"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing := r.snapshotOf(snapshot.UserID, snapshot.Date); existing != nil {
		return existing, nil
	}
	r.snapshots[snapshot.ID] = *snapshot
	stored := *snapshot
	return &stored, nil
}

func (r *CashRepository) ListSnapshots(_ context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CashSnapshot, error) {
	if err := r.failure("ListSnapshots"); err != nil {
		return nil, err
	}
	return r.listSnapshots(userID, &startDate, &endDate), nil
}

func (r *CashRepository) ListSnapshotsFrom(_ context.Context, userID uuid.UUID, date time.Time) ([]*entity.CashSnapshot, error) {
	return r.listSnapshots(userID, &date, nil), nil
}

func (r *CashRepository) listSnapshots(userID uuid.UUID, start, end *time.Time) []*entity.CashSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.CashSnapshot, 0)
	for _, s := range r.snapshots {
		if s.UserID == userID && inRange(s.Date, start, end) {
			s := s
			result = append(result, &s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}

func (r *CashRepository) UpdateSnapshot(_ context.Context, snapshot *entity.CashSnapshot) error {
	if err := r.failure("UpdateSnapshot"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snapshot.ID] = *snapshot
	return nil
}

func (r *CashRepository) ApplyDelta(_ context.Context, snapshotID uuid.UUID, inflow, outflow decimal.Decimal) error {
	if err := r.failure("ApplyDelta"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.snapshots[snapshotID]
	if !ok {
		return domainerror.ErrSnapshotNotFound
	}
	s.InflowTotal = s.InflowTotal.Add(inflow)
	s.OutflowTotal = s.OutflowTotal.Add(outflow)
	s.ClosingBalance = s.ClosingBalance.Add(inflow).Sub(outflow)
	r.snapshots[snapshotID] = s
	return nil
}

func (r *CashRepository) ShiftBalancesAfter(_ context.Context, userID uuid.UUID, date time.Time, delta decimal.Decimal) error {
	if err := r.failure("ShiftBalancesAfter"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.snapshots {
		if s.UserID == userID && s.Date.After(date) {
			s.OpeningBalance = s.OpeningBalance.Add(delta)
			s.ClosingBalance = s.ClosingBalance.Add(delta)
			r.snapshots[id] = s
		}
	}
	return nil
}

func (r *CashRepository) CreateMovement(_ context.Context, movement *entity.CashMovement) error {
	if err := r.failure("CreateMovement"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements[movement.ID] = *movement
	return nil
}

func (r *CashRepository) DeleteMovement(_ context.Context, id uuid.UUID) error {
	if err := r.failure("DeleteMovement"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[id]; !ok {
		return domainerror.ErrMovementNotFound
	}
	delete(r.movements, id)
	return nil
}

func (r *CashRepository) FindMovementsByLink(_ context.Context, userID uuid.UUID, link entity.MovementLink) ([]*entity.CashMovement, error) {
	if err := r.failure("FindMovementsByLink"); err != nil {
		return nil, err
	}
	if link.IncomeID == nil && link.ExpenseID == nil && link.SaleID == nil && link.CommissionID == nil {
		return []*entity.CashMovement{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.CashMovement, 0)
	for _, m := range r.movements {
		if m.UserID != userID ||
			!sameLink(link.IncomeID, m.IncomeID) ||
			!sameLink(link.ExpenseID, m.ExpenseID) ||
			!sameLink(link.SaleID, m.SaleID) ||
			!sameLink(link.CommissionID, m.CommissionID) {
			continue
		}
		m := m
		result = append(result, &m)
	}
	return result, nil
}

func sameLink(want, got *uuid.UUID) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}

func (r *CashRepository) ListMovements(_ context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CashMovement, error) {
	if err := r.failure("ListMovements"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.CashMovement, 0)
	for _, m := range r.movements {
		if m.UserID == userID && inRange(m.Date, &startDate, &endDate) {
			m := m
			result = append(result, &m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

// ReportCache is an in-memory adapter.ReportCache that records invalidations.
type ReportCache struct {
	failures
	mu            sync.Mutex
	entries       map[string]any
	Invalidations map[uuid.UUID]int
}

// NewReportCache creates an empty ReportCache.
func NewReportCache() *ReportCache {
	return &ReportCache{
		entries:       make(map[string]any),
		Invalidations: make(map[uuid.UUID]int),
	}
}

// Get only hits values stored with the same concrete pointer type as dest.
func (c *ReportCache) Get(_ context.Context, userID uuid.UUID, key string, dest any) (bool, error) {
	if err := c.failure("Get"); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[userID.String()+":"+key]
	if !ok {
		return false, nil
	}
	return assign(dest, value), nil
}

func (c *ReportCache) Set(_ context.Context, userID uuid.UUID, key string, value any) error {
	if err := c.failure("Set"); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID.String()+":"+key] = value
	return nil
}

func (c *ReportCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	c.Invalidations[userID]++
	prefix := userID.String() + ":"
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
	return c.failure("Invalidate")
}

func assign(dest, value any) bool {
	dv, vv := reflect.ValueOf(dest), reflect.ValueOf(value)
	if dv.Kind() != reflect.Pointer || dv.Type() != vv.Type() {
		return false
	}
	dv.Elem().Set(vv.Elem())
	return true
}

// Len returns the number of cached entries.
func (c *ReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Notifier is an adapter.SettlementNotifier that records notices.
type Notifier struct {
	failures
	mu      sync.Mutex
	Notices []adapter.CommissionPaidNotice
}

func (n *Notifier) NotifyCommissionPaid(_ context.Context, notice adapter.CommissionPaidNotice) error {
	if err := n.failure("NotifyCommissionPaid"); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Notices = append(n.Notices, notice)
	return nil
}

// Sent returns the number of recorded notices.
func (n *Notifier) Sent() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Notices)
}
