package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/persistence/model"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := r.db.WithContext(ctx).Create(model.ProductFromEntity(product)).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var m model.ProductModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return m.ToEntity(), nil
}

func (r *productRepository) List(ctx context.Context, filter adapter.ProductFilter) ([]*entity.Product, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}

	var models []model.ProductModel
	if err := query.Order("name ASC").Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(models))
	for i := range models {
		products[i] = models[i].ToEntity()
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"sku":         product.SKU,
			"supplier_id": product.SupplierID,
			"cost_price":  product.CostPrice,
			"price":       product.Price,
			"acquired_on": product.AcquiredOn,
			"updated_at":  product.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

// UpdateStatus is a compare-and-set on status; concurrent sales of the same
// piece update one row at most once.
func (r *productRepository) UpdateStatus(ctx context.Context, product *entity.Product, from entity.ProductStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND status = ?", product.ID, string(from)).
		Updates(map[string]any{
			"status":     string(product.Status),
			"sale_id":    product.SaleID,
			"sold_at":    product.SoldAt,
			"updated_at": product.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}
