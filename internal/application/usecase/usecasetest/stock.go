package usecasetest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// CustomerRepository is an in-memory adapter.CustomerRepository. Deleted
// customers are dropped.
type CustomerRepository struct {
	failures
	mu        sync.Mutex
	customers map[uuid.UUID]entity.Customer
}

// NewCustomerRepository creates a CustomerRepository holding the given customers.
func NewCustomerRepository(customers ...*entity.Customer) *CustomerRepository {
	r := &CustomerRepository{customers: make(map[uuid.UUID]entity.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = *c
	}
	return r
}

func (r *CustomerRepository) Create(_ context.Context, customer *entity.Customer) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if err := r.failure("FindByID"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, domainerror.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *CustomerRepository) FindByUser(_ context.Context, userID uuid.UUID, search string) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Customer, 0)
	for _, c := range r.customers {
		if c.UserID != userID || !matches(search, c.Name, c.Email, c.Phone) {
			continue
		}
		c := c
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *CustomerRepository) Update(_ context.Context, customer *entity.Customer) error {
	if err := r.failure("Update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return domainerror.ErrCustomerNotFound
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return domainerror.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

// SupplierRepository is an in-memory adapter.SupplierRepository. Deleted
// suppliers are dropped.
type SupplierRepository struct {
	failures
	mu        sync.Mutex
	suppliers map[uuid.UUID]entity.Supplier
}

// NewSupplierRepository creates a SupplierRepository holding the given suppliers.
func NewSupplierRepository(suppliers ...*entity.Supplier) *SupplierRepository {
	r := &SupplierRepository{suppliers: make(map[uuid.UUID]entity.Supplier)}
	for _, s := range suppliers {
		r.suppliers[s.ID] = *s
	}
	return r
}

func (r *SupplierRepository) Create(_ context.Context, supplier *entity.Supplier) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *SupplierRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	if err := r.failure("FindByID"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, domainerror.ErrSupplierNotFound
	}
	return &s, nil
}

func (r *SupplierRepository) FindByUser(_ context.Context, userID uuid.UUID, search string) ([]*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Supplier, 0)
	for _, s := range r.suppliers {
		if s.UserID != userID || !matches(search, s.Name, s.Email, s.Document) {
			continue
		}
		s := s
		result = append(result, &s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *SupplierRepository) Update(_ context.Context, supplier *entity.Supplier) error {
	if err := r.failure("Update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[supplier.ID]; !ok {
		return domainerror.ErrSupplierNotFound
	}
	r.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *SupplierRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[id]; !ok {
		return domainerror.ErrSupplierNotFound
	}
	delete(r.suppliers, id)
	return nil
}

// ProductRepository is an in-memory adapter.ProductRepository.
type ProductRepository struct {
	failures
	mu       sync.Mutex
	products map[uuid.UUID]entity.Product

	// BeforeUpdateStatus runs before each conditional update when set.
	BeforeUpdateStatus func(product *entity.Product)
}

// NewProductRepository creates a ProductRepository holding the given products.
func NewProductRepository(products ...*entity.Product) *ProductRepository {
	r := &ProductRepository{products: make(map[uuid.UUID]entity.Product)}
	for _, p := range products {
		r.products[p.ID] = *p
	}
	return r
}

func (r *ProductRepository) Create(_ context.Context, product *entity.Product) error {
	if err := r.failure("Create"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if err := r.failure("FindByID"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) List(_ context.Context, filter adapter.ProductFilter) ([]*entity.Product, error) {
	if err := r.failure("List"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.UserID != filter.UserID ||
			(filter.Status != nil && p.Status != *filter.Status) ||
			!sameLink(filter.SupplierID, p.SupplierID) {
			continue
		}
		p := p
		result = append(result, &p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Update keeps the stored status and sale link, like the database adapter.
func (r *ProductRepository) Update(_ context.Context, product *entity.Product) error {
	if err := r.failure("Update"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[product.ID]
	if !ok {
		return domainerror.ErrProductNotFound
	}
	updated := *product
	updated.Status = stored.Status
	updated.SaleID = stored.SaleID
	updated.SoldAt = stored.SoldAt
	r.products[product.ID] = updated
	return nil
}

func (r *ProductRepository) UpdateStatus(_ context.Context, product *entity.Product, from entity.ProductStatus) (bool, error) {
	if err := r.failure("UpdateStatus"); err != nil {
		return false, err
	}
	if r.BeforeUpdateStatus != nil {
		r.BeforeUpdateStatus(product)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[product.ID]
	if !ok || stored.Status != from {
		return false, nil
	}
	stored.Status = product.Status
	stored.SaleID = product.SaleID
	stored.SoldAt = product.SoldAt
	stored.UpdatedAt = product.UpdatedAt
	r.products[product.ID] = stored
	return true, nil
}

// SetStatus overwrites a stored status, simulating a concurrent writer.
func (r *ProductRepository) SetStatus(id uuid.UUID, status entity.ProductStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.products[id]
	p.Status = status
	r.products[id] = p
}

func (r *ProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domainerror.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}
