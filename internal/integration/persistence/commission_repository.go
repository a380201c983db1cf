package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/persistence/model"
)

// commissionRepository implements the adapter.CommissionRepository interface.
type commissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new commission repository instance.
func NewCommissionRepository(db *gorm.DB) adapter.CommissionRepository {
	return &commissionRepository{
		db: db,
	}
}

// Create creates a new commission in the database.
func (r *commissionRepository) Create(ctx context.Context, commission *entity.Commission) error {
	return r.db.WithContext(ctx).Create(model.CommissionFromEntity(commission)).Error
}

// FindByID retrieves a commission by its ID.
func (r *commissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Commission, error) {
	var commissionModel model.CommissionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&commissionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCommissionNotFound
		}
		return nil, result.Error
	}
	return commissionModel.ToEntity(), nil
}

// ExistsBySaleID checks whether the sale already has a commission.
func (r *commissionRepository) ExistsBySaleID(ctx context.Context, saleID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CommissionModel{}).
		Where("sale_id = ?", saleID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// List retrieves the commissions matching the filter, newest first.
func (r *commissionRepository) List(ctx context.Context, filter adapter.CommissionFilter) ([]*entity.Commission, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}

	var commissionModels []model.CommissionModel
	if err := query.Order("created_at DESC").Find(&commissionModels).Error; err != nil {
		return nil, err
	}

	commissions := make([]*entity.Commission, len(commissionModels))
	for i, cm := range commissionModels {
		commissions[i] = cm.ToEntity()
	}
	return commissions, nil
}

// UpdateStatus writes status, payment date and expense link only while the
// stored status equals from. Nil payment date or expense id clear the column.
func (r *commissionRepository) UpdateStatus(ctx context.Context, commission *entity.Commission, from entity.CommissionStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CommissionModel{}).
		Where("id = ? AND status = ?", commission.ID, string(from)).
		Updates(map[string]any{
			"status":       string(commission.Status),
			"payment_date": commission.PaymentDate,
			"expense_id":   commission.ExpenseID,
			"updated_at":   commission.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
