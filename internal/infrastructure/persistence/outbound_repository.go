package persistence

import (
	"context"
	"errors"

	"github.com/wms/backend/internal/domain/ledger"
	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOutboundRepository implements ledger.OutboundRepository using GORM
type GormOutboundRepository struct {
	db *gorm.DB
}

// NewGormOutboundRepository creates a new GormOutboundRepository
func NewGormOutboundRepository(db *gorm.DB) *GormOutboundRepository {
	return &GormOutboundRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormOutboundRepository) FindByID(ctx context.Context, id uint) (*ledger.OutboundSale, error) {
	var sale ledger.OutboundSale
	if err := r.db.WithContext(ctx).First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll returns all sales, newest first
func (r *GormOutboundRepository) FindAll(ctx context.Context) ([]ledger.OutboundSale, error) {
	var sales []ledger.OutboundSale
	if err := r.db.WithContext(ctx).Order("outbound_date DESC, id DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Save inserts the sale when its ID is zero, updates it otherwise
func (r *GormOutboundRepository) Save(ctx context.Context, sale *ledger.OutboundSale) error {
	if sale.ID == 0 {
		return r.db.WithContext(ctx).Create(sale).Error
	}
	return r.db.WithContext(ctx).Save(sale).Error
}

// Delete removes a sale by ID
func (r *GormOutboundRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ledger.OutboundSale{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of sales
func (r *GormOutboundRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ledger.OutboundSale{}).Count(&count).Error
	return count, err
}

// DistinctProductNames returns the distinct non-empty product names
func (r *GormOutboundRepository) DistinctProductNames(ctx context.Context) ([]string, error) {
	return distinctColumn(r.db.WithContext(ctx), &ledger.OutboundSale{}, "product_name")
}

// DistinctCustomers returns the distinct non-empty customer names
func (r *GormOutboundRepository) DistinctCustomers(ctx context.Context) ([]string, error) {
	return distinctColumn(r.db.WithContext(ctx), &ledger.OutboundSale{}, "customer")
}
