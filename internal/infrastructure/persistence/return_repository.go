package persistence

import (
	"context"
	"errors"

	"github.com/wms/backend/internal/domain/ledger"
	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReturnRepository implements ledger.ReturnRepository using GORM
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GormReturnRepository
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// FindByID finds a return record by its ID
func (r *GormReturnRepository) FindByID(ctx context.Context, id uint) (*ledger.ReturnRecord, error) {
	var record ledger.ReturnRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindAll returns all return records, newest first
func (r *GormReturnRepository) FindAll(ctx context.Context) ([]ledger.ReturnRecord, error) {
	var records []ledger.ReturnRecord
	if err := r.db.WithContext(ctx).Order("return_date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save inserts the record when its ID is zero, updates it otherwise
func (r *GormReturnRepository) Save(ctx context.Context, record *ledger.ReturnRecord) error {
	if record.ID == 0 {
		return r.db.WithContext(ctx).Create(record).Error
	}
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes a return record by ID
func (r *GormReturnRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ledger.ReturnRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the number of return records
func (r *GormReturnRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ledger.ReturnRecord{}).Count(&count).Error
	return count, err
}
