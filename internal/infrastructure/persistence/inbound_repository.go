package persistence

import (
	"context"
	"errors"

	"github.com/wms/backend/internal/domain/ledger"
	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInboundRepository implements ledger.InboundRepository using GORM
type GormInboundRepository struct {
	db *gorm.DB
}

// NewGormInboundRepository creates a new GormInboundRepository
func NewGormInboundRepository(db *gorm.DB) *GormInboundRepository {
	return &GormInboundRepository{db: db}
}

// FindByID finds a receipt by its ID
func (r *GormInboundRepository) FindByID(ctx context.Context, id uint) (*ledger.InboundReceipt, error) {
	var receipt ledger.InboundReceipt
	if err := r.db.WithContext(ctx).First(&receipt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &receipt, nil
}

// FindAll returns all receipts, newest first
func (r *GormInboundRepository) FindAll(ctx context.Context) ([]ledger.InboundReceipt, error) {
	var receipts []ledger.InboundReceipt
	if err := r.db.WithContext(ctx).Order("inbound_date DESC, id DESC").Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

// Save inserts the receipt when its ID is zero, updates it otherwise
func (r *GormInboundRepository) Save(ctx context.Context, receipt *ledger.InboundReceipt) error {
	if receipt.ID == 0 {
		return r.db.WithContext(ctx).Create(receipt).Error
	}
	return r.db.WithContext(ctx).Save(receipt).Error
}

// Delete removes a receipt by ID
func (r *GormInboundRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ledger.InboundReceipt{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of receipts
func (r *GormInboundRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ledger.InboundReceipt{}).Count(&count).Error
	return count, err
}

// DistinctProductNames returns the distinct non-empty product names
func (r *GormInboundRepository) DistinctProductNames(ctx context.Context) ([]string, error) {
	return distinctColumn(r.db.WithContext(ctx), &ledger.InboundReceipt{}, "product_name")
}

// DistinctSuppliers returns the distinct non-empty supplier names
func (r *GormInboundRepository) DistinctSuppliers(ctx context.Context) ([]string, error) {
	return distinctColumn(r.db.WithContext(ctx), &ledger.InboundReceipt{}, "supplier")
}

// distinctColumn selects the distinct non-empty values of a column
func distinctColumn(db *gorm.DB, model any, column string) ([]string, error) {
	var values []string
	err := db.Model(model).
		Distinct(column).
		Where(column+" IS NOT NULL AND "+column+" != ''").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
