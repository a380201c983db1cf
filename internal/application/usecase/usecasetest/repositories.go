// Package usecasetest provides in-memory adapters for use case tests.
//
// Every repository keeps copies of what it stores and can be told to fail a
// method by name with Fail.
package usecasetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// failures maps method names to the error they must return.
type failures struct {
	mu   sync.Mutex
	errs map[string]error
}

// Fail makes the named method return err until cleared with a nil err.
func (f *failures) Fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errs == nil {
		f.errs = make(map[string]error)
	}
	if err == nil {
		delete(f.errs, method)
		return
	}
	f.errs[method] = err
}

func (f *failures) failure(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs[method]
}

func inRange(date time.Time, start, end *time.Time) bool {
	if start != nil && date.Before(*start) {
		return false
	}
	if end != nil && date.After(*end) {
		return false
	}
	return true
}

// CategoryRepository is an in-memory adapter.CategoryRepository.
type CategoryRepository struct {
	failures
	mu         sync.Mutex
	categories map[uuid.UUID]entity.Category
}

// NewCategoryRepository creates an empty CategoryRepository.
func NewCategoryRepository(categories ...*entity.Category) *CategoryRepository {
	r := &CategoryRepository{categories: make(map[uuid.UUID]entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = *c
	}
	return r
}

func (r *CategoryRepository) Create(_ context.Context, category *entity.Category) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if err := r.failure("FindByID"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			result = append(result, &c)
		}
	}
	return result, nil
}

func (r *CategoryRepository) FindByUser(_ context.Context, userID uuid.UUID, categoryType *entity.CategoryType) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Category, 0)
	for _, c := range r.categories {
		if c.UserID != userID || (categoryType != nil && c.Type != *categoryType) {
			continue
		}
		c := c
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *CategoryRepository) ExistsByNameAndType(_ context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.UserID == userID && c.Type == categoryType && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *CategoryRepository) Update(_ context.Context, category *entity.Category) error {
	if err := r.failure("Update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

// ExpenseRepository is an in-memory adapter.ExpenseRepository.
type ExpenseRepository struct {
	failures
	mu       sync.Mutex
	expenses map[uuid.UUID]entity.Expense
}

// NewExpenseRepository creates an ExpenseRepository holding the given expenses.
func NewExpenseRepository(expenses ...*entity.Expense) *ExpenseRepository {
	r := &ExpenseRepository{expenses: make(map[uuid.UUID]entity.Expense)}
	for _, e := range expenses {
		r.expenses[e.ID] = *e
	}
	return r
}

func (r *ExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *ExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	if err := r.failure("FindByID"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return &e, nil
}

func (r *ExpenseRepository) List(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	if err := r.failure("List"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Expense, 0)
	for _, e := range r.expenses {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.Paid != nil && e.Paid != *filter.Paid {
			continue
		}
		if filter.CategoryID != nil && (e.CategoryID == nil || *e.CategoryID != *filter.CategoryID) {
			continue
		}
		date := e.DueDate
		if filter.DateField == adapter.ExpenseDatePayment {
			if e.PaymentDate == nil {
				continue
			}
			date = *e.PaymentDate
		}
		if !inRange(date, filter.StartDate, filter.EndDate) {
			continue
		}
		e := e
		result = append(result, &e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate.After(result[j].DueDate) })
	return result, nil
}

func (r *ExpenseRepository) Update(_ context.Context, expense *entity.Expense) error {
	if err := r.failure("Update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *ExpenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.failure("Delete"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[id]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

// Count returns the number of stored expenses.
func (r *ExpenseRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.expenses)
}

// IncomeRepository is an in-memory adapter.IncomeRepository.
type IncomeRepository struct {
	failures
	mu      sync.Mutex
	incomes map[uuid.UUID]entity.Income
}

// NewIncomeRepository creates an IncomeRepository holding the given incomes.
func NewIncomeRepository(incomes ...*entity.Income) *IncomeRepository {
	r := &IncomeRepository{incomes: make(map[uuid.UUID]entity.Income)}
	for _, i := range incomes {
		r.incomes[i.ID] = *i
	}
	return r
}

func (r *IncomeRepository) Create(_ context.Context, income *entity.Income) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incomes[income.ID] = *income
	return nil
}

func (r *IncomeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.incomes[id]
	if !ok {
		return nil, domainerror.ErrIncomeNotFound
	}
	return &i, nil
}

func (r *IncomeRepository) List(_ context.Context, filter adapter.IncomeFilter) ([]*entity.Income, error) {
	if err := r.failure("List"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Income, 0)
	for _, i := range r.incomes {
		if i.UserID != filter.UserID || !inRange(i.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		if filter.CategoryID != nil && (i.CategoryID == nil || *i.CategoryID != *filter.CategoryID) {
			continue
		}
		i := i
		result = append(result, &i)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Date.After(result[b].Date) })
	return result, nil
}

func (r *IncomeRepository) SumBetween(_ context.Context, userID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	if err := r.failure("SumBetween"); err != nil {
		return decimal.Zero, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, i := range r.incomes {
		if i.UserID == userID && inRange(i.Date, &startDate, &endDate) {
			total = total.Add(i.Amount)
		}
	}
	return total, nil
}

func (r *IncomeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.failure("Delete"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.incomes[id]; !ok {
		return domainerror.ErrIncomeNotFound
	}
	delete(r.incomes, id)
	return nil
}

// SellerRepository is an in-memory adapter.SellerRepository.
type SellerRepository struct {
	failures
	mu      sync.Mutex
	sellers map[uuid.UUID]entity.Seller
}

// NewSellerRepository creates a SellerRepository holding the given sellers.
func NewSellerRepository(sellers ...*entity.Seller) *SellerRepository {
	r := &SellerRepository{sellers: make(map[uuid.UUID]entity.Seller)}
	for _, s := range sellers {
		r.sellers[s.ID] = *s
	}
	return r
}

func (r *SellerRepository) Create(_ context.Context, seller *entity.Seller) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sellers[seller.ID] = *seller
	return nil
}

func (r *SellerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Seller, error) {
	if err := r.failure("FindByID"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sellers[id]
	if !ok {
		return nil, domainerror.ErrSellerNotFound
	}
	return &s, nil
}

func (r *SellerRepository) FindByUser(_ context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Seller, 0)
	for _, s := range r.sellers {
		if s.UserID != userID || (activeOnly && !s.Active) {
			continue
		}
		s := s
		result = append(result, &s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *SellerRepository) Update(_ context.Context, seller *entity.Seller) error {
	if err := r.failure("Update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sellers[seller.ID] = *seller
	return nil
}

// SaleRepository is an in-memory adapter.SaleRepository.
type SaleRepository struct {
	failures
	mu    sync.Mutex
	sales map[uuid.UUID]entity.Sale
}

// NewSaleRepository creates a SaleRepository holding the given sales.
func NewSaleRepository(sales ...*entity.Sale) *SaleRepository {
	r := &SaleRepository{sales: make(map[uuid.UUID]entity.Sale)}
	for _, s := range sales {
		r.sales[s.ID] = *s
	}
	return r
}

func (r *SaleRepository) Create(_ context.Context, sale *entity.Sale) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales[sale.ID] = *sale
	return nil
}

func (r *SaleRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, domainerror.ErrSaleNotFound
	}
	return &s, nil
}

func (r *SaleRepository) List(_ context.Context, filter adapter.SaleFilter) ([]*entity.Sale, error) {
	if err := r.failure("List"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Sale, 0)
	for _, s := range r.sales {
		if s.UserID != filter.UserID || !inRange(s.SaleDate, filter.StartDate, filter.EndDate) {
			continue
		}
		if filter.SellerID != nil && (s.SellerID == nil || *s.SellerID != *filter.SellerID) {
			continue
		}
		s := s
		result = append(result, &s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SaleDate.After(result[j].SaleDate) })
	return result, nil
}

func (r *SaleRepository) SumBetween(ctx context.Context, userID uuid.UUID, sellerID *uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	if err := r.failure("SumBetween"); err != nil {
		return decimal.Zero, err
	}
	sales, err := r.List(ctx, adapter.SaleFilter{UserID: userID, SellerID: sellerID, StartDate: &startDate, EndDate: &endDate})
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalAmount)
	}
	return total, nil
}

func (r *SaleRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[id]; !ok {
		return domainerror.ErrSaleNotFound
	}
	delete(r.sales, id)
	return nil
}

// Count returns the number of stored sales.
func (r *SaleRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sales)
}

// CommissionRepository is an in-memory adapter.CommissionRepository.
type CommissionRepository struct {
	failures
	mu          sync.Mutex
	commissions map[uuid.UUID]entity.Commission

	// BeforeUpdateStatus runs before each conditional update when set.
	BeforeUpdateStatus func(commission *entity.Commission)
}

// NewCommissionRepository creates a CommissionRepository holding the given commissions.
func NewCommissionRepository(commissions ...*entity.Commission) *CommissionRepository {
	r := &CommissionRepository{commissions: make(map[uuid.UUID]entity.Commission)}
	for _, c := range commissions {
		r.commissions[c.ID] = *c
	}
	return r
}

func (r *CommissionRepository) Create(_ context.Context, commission *entity.Commission) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commissions[commission.ID] = *commission
	return nil
}

func (r *CommissionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.commissions[id]
	if !ok {
		return nil, domainerror.ErrCommissionNotFound
	}
	return &c, nil
}

func (r *CommissionRepository) ExistsBySaleID(_ context.Context, saleID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.commissions {
		if c.SaleID == saleID {
			return true, nil
		}
	}
	return false, nil
}

func (r *CommissionRepository) List(_ context.Context, filter adapter.CommissionFilter) ([]*entity.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Commission, 0)
	for _, c := range r.commissions {
		if c.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.SellerID != nil && c.SellerID != *filter.SellerID {
			continue
		}
		c := c
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// UpdateStatus fails with the "UpdateStatus" error on every call, or with the
// "RevertStatus" error when moving a paid commission back.
func (r *CommissionRepository) UpdateStatus(_ context.Context, commission *entity.Commission, from entity.CommissionStatus) (bool, error) {
	if err := r.failure("UpdateStatus"); err != nil {
		return false, err
	}
	if from == entity.CommissionStatusPaid {
		if err := r.failure("RevertStatus"); err != nil {
			return false, err
		}
	}
	if r.BeforeUpdateStatus != nil {
		r.BeforeUpdateStatus(commission)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.commissions[commission.ID]
	if !ok || stored.Status != from {
		return false, nil
	}
	stored.Status = commission.Status
	stored.PaymentDate = commission.PaymentDate
	stored.ExpenseID = commission.ExpenseID
	stored.UpdatedAt = commission.UpdatedAt
	r.commissions[commission.ID] = stored
	return true, nil
}

// SetStatus overwrites a stored status, simulating a concurrent writer.
func (r *CommissionRepository) SetStatus(id uuid.UUID, status entity.CommissionStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.commissions[id]
	c.Status = status
	r.commissions[id] = c
}

// GoalRepository is an in-memory adapter.GoalRepository.
type GoalRepository struct {
	failures
	mu    sync.Mutex
	goals map[uuid.UUID]entity.Goal
}

// NewGoalRepository creates a GoalRepository holding the given goals.
func NewGoalRepository(goals ...*entity.Goal) *GoalRepository {
	r := &GoalRepository{goals: make(map[uuid.UUID]entity.Goal)}
	for _, g := range goals {
		r.goals[g.ID] = *g
	}
	return r
}

func (r *GoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals[goal.ID] = *goal
	return nil
}

func (r *GoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return &g, nil
}

func (r *GoalRepository) List(_ context.Context, filter adapter.GoalFilter) ([]*entity.Goal, error) {
	if err := r.failure("List"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Goal, 0)
	for _, g := range r.goals {
		if g.UserID != filter.UserID ||
			(filter.Metric != nil && g.Metric != *filter.Metric) ||
			!sameLink(filter.SellerID, g.SellerID) {
			continue
		}
		g := g
		result = append(result, &g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *GoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	if err := r.failure("Update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goals[goal.ID] = *goal
	return nil
}

func (r *GoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}
