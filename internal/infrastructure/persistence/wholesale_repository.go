package persistence

import (
	"context"
	"errors"

	"github.com/wms/backend/internal/domain/ledger"
	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormWholesaleRepository implements ledger.WholesaleRepository using
// GORM. Items are exclusively owned by their order: Save replaces the
// whole item list and Delete cascades to it, both inside a single
// transaction so a fault mid-sequence cannot strand an order without
// items.
type GormWholesaleRepository struct {
	db *gorm.DB
}

// NewGormWholesaleRepository creates a new GormWholesaleRepository
func NewGormWholesaleRepository(db *gorm.DB) *GormWholesaleRepository {
	return &GormWholesaleRepository{db: db}
}

// FindByID finds an order with its items by ID
func (r *GormWholesaleRepository) FindByID(ctx context.Context, id uint) (*ledger.WholesaleOrder, error) {
	var order ledger.WholesaleOrder
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll returns all orders with their items, newest first
func (r *GormWholesaleRepository) FindAll(ctx context.Context) ([]ledger.WholesaleOrder, error) {
	var orders []ledger.WholesaleOrder
	if err := r.db.WithContext(ctx).Preload("Items").Order("order_date DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists the order and replaces its item list atomically
func (r *GormWholesaleRepository) Save(ctx context.Context, order *ledger.WholesaleOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		// Persist the header without cascading items; the item swap is
		// explicit below.
		if order.ID == 0 {
			if err := tx.Omit("Items").Create(order).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Omit("Items").Save(order).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&ledger.WholesaleItem{}).Error; err != nil {
				return err
			}
		}

		for idx := range items {
			items[idx].ID = 0
			items[idx].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items

		return nil
	})
}

// Delete removes an order and its items by ID
func (r *GormWholesaleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ledger.WholesaleItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&ledger.WholesaleOrder{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count returns the number of orders
func (r *GormWholesaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ledger.WholesaleOrder{}).Count(&count).Error
	return count, err
}

// DistinctProductNames returns the distinct non-empty item product names
func (r *GormWholesaleRepository) DistinctProductNames(ctx context.Context) ([]string, error) {
	return distinctColumn(r.db.WithContext(ctx), &ledger.WholesaleItem{}, "product_name")
}

// DistinctCustomers returns the distinct non-empty customer names
func (r *GormWholesaleRepository) DistinctCustomers(ctx context.Context) ([]string, error) {
	return distinctColumn(r.db.WithContext(ctx), &ledger.WholesaleOrder{}, "customer")
}
