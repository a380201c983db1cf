package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/persistence/model"
)

// sellerRepository implements the adapter.SellerRepository interface.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository instance.
func NewSellerRepository(db *gorm.DB) adapter.SellerRepository {
	return &sellerRepository{
		db: db,
	}
}

// Create creates a new seller in the database.
func (r *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	return r.db.WithContext(ctx).Create(model.SellerFromEntity(seller)).Error
}

// FindByID retrieves a seller by its ID.
func (r *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerModel model.SellerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sellerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSellerNotFound
		}
		return nil, result.Error
	}
	return sellerModel.ToEntity(), nil
}

// FindByUser retrieves the sellers of a user ordered by name.
func (r *sellerRepository) FindByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Seller, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var sellerModels []model.SellerModel
	if err := query.Order("name ASC").Find(&sellerModels).Error; err != nil {
		return nil, err
	}

	sellers := make([]*entity.Seller, len(sellerModels))
	for i, sm := range sellerModels {
		sellers[i] = sm.ToEntity()
	}
	return sellers, nil
}

// Update updates an existing seller in the database.
func (r *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	return r.db.WithContext(ctx).Save(model.SellerFromEntity(seller)).Error
}

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a new sale in the database.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(model.SaleFromEntity(sale)).Error
}

// FindByID retrieves a sale by its ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// List retrieves the sales matching the filter, most recent first.
func (r *saleRepository) List(ctx context.Context, filter adapter.SaleFilter) ([]*entity.Sale, error) {
	query := r.saleScope(ctx, filter.UserID, filter.SellerID, filter.StartDate, filter.EndDate)

	var saleModels []model.SaleModel
	if err := query.Order("sale_date DESC").Order("created_at DESC").Find(&saleModels).Error; err != nil {
		return nil, err
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}

// SumBetween returns the total sold within [startDate, endDate], optionally for one seller.
func (r *saleRepository) SumBetween(
	ctx context.Context,
	userID uuid.UUID,
	sellerID *uuid.UUID,
	startDate, endDate time.Time,
) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	result := r.saleScope(ctx, userID, sellerID, &startDate, &endDate).
		Model(&model.SaleModel{}).
		Pluck("total_amount", &amounts)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return decimal.Sum(decimal.Zero, amounts...), nil
}

// Delete removes a sale.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SaleModel{}, "id = ?", id).Error
}

func (r *saleRepository) saleScope(
	ctx context.Context,
	userID uuid.UUID,
	sellerID *uuid.UUID,
	startDate, endDate *time.Time,
) *gorm.DB {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if sellerID != nil {
		query = query.Where("seller_id = ?", *sellerID)
	}
	if startDate != nil {
		query = query.Where("sale_date >= ?", entity.Day(*startDate))
	}
	if endDate != nil {
		query = query.Where("sale_date <= ?", entity.Day(*endDate))
	}
	return query
}
