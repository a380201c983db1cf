package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/persistence/model"
)

// searchPattern builds a case-insensitive LIKE pattern.
func searchPattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(model.CustomerFromEntity(customer)).Error
}

// FindByID retrieves a customer by its ID.
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindByUser retrieves the customers of a user ordered by name.
func (r *customerRepository) FindByUser(ctx context.Context, userID uuid.UUID, search string) ([]*entity.Customer, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if strings.TrimSpace(search) != "" {
		pattern := searchPattern(search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?)", pattern, pattern, pattern)
	}

	var customerModels []model.CustomerModel
	if err := query.Order("name ASC").Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]*entity.Customer, len(customerModels))
	for i, cm := range customerModels {
		customers[i] = cm.ToEntity()
	}
	return customers, nil
}

// Update updates an existing customer in the database. Deleted customers are
// not found.
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := r.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":       customer.Name,
			"email":      customer.Email,
			"phone":      customer.Phone,
			"notes":      customer.Notes,
			"updated_at": customer.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCustomerNotFound
	}
	return nil
}

// Delete soft-deletes a customer.
func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCustomerNotFound
	}
	return nil
}

// supplierRepository implements the adapter.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository instance.
func NewSupplierRepository(db *gorm.DB) adapter.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// Create creates a new supplier in the database.
func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Create(model.SupplierFromEntity(supplier)).Error
}

// FindByID retrieves a supplier by its ID.
func (r *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierModel model.SupplierModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&supplierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSupplierNotFound
		}
		return nil, result.Error
	}
	return supplierModel.ToEntity(), nil
}

// FindByUser retrieves the suppliers of a user ordered by name.
func (r *supplierRepository) FindByUser(ctx context.Context, userID uuid.UUID, search string) ([]*entity.Supplier, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if strings.TrimSpace(search) != "" {
		pattern := searchPattern(search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR document LIKE ?)", pattern, pattern, pattern)
	}

	var supplierModels []model.SupplierModel
	if err := query.Order("name ASC").Find(&supplierModels).Error; err != nil {
		return nil, err
	}

	suppliers := make([]*entity.Supplier, len(supplierModels))
	for i, sm := range supplierModels {
		suppliers[i] = sm.ToEntity()
	}
	return suppliers, nil
}

// Update updates an existing supplier in the database. Deleted suppliers are
// not found.
func (r *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	result := r.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]any{
			"name":       supplier.Name,
			"email":      supplier.Email,
			"phone":      supplier.Phone,
			"document":   supplier.Document,
			"notes":      supplier.Notes,
			"updated_at": supplier.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSupplierNotFound
	}
	return nil
}

// Delete soft-deletes a supplier.
func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SupplierModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSupplierNotFound
	}
	return nil
}
