package persistence

import (
	"context"
	"errors"

	"github.com/wms/backend/internal/domain/archive"
	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements archive.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*archive.Product, error) {
	var product archive.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByName finds a product by its exact name
func (r *GormProductRepository) FindByName(ctx context.Context, name string) (*archive.Product, error) {
	var product archive.Product
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll returns all products ordered by name
func (r *GormProductRepository) FindAll(ctx context.Context) ([]archive.Product, error) {
	var products []archive.Product
	if err := r.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save inserts the product when its ID is zero, updates it otherwise
func (r *GormProductRepository) Save(ctx context.Context, product *archive.Product) error {
	if product.ID == 0 {
		return r.db.WithContext(ctx).Create(product).Error
	}
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product by ID
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&archive.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// IsEmpty reports whether the products table has no rows
func (r *GormProductRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&archive.Product{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// GormCustomerRepository implements archive.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*archive.Customer, error) {
	var customer archive.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByName finds a customer by its exact name
func (r *GormCustomerRepository) FindByName(ctx context.Context, name string) (*archive.Customer, error) {
	var customer archive.Customer
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll returns all customers ordered by name
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]archive.Customer, error) {
	var customers []archive.Customer
	if err := r.db.WithContext(ctx).Order("name").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Save inserts the customer when its ID is zero, updates it otherwise
func (r *GormCustomerRepository) Save(ctx context.Context, customer *archive.Customer) error {
	if customer.ID == 0 {
		return r.db.WithContext(ctx).Create(customer).Error
	}
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete removes a customer by ID
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&archive.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// IsEmpty reports whether the customers table has no rows
func (r *GormCustomerRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&archive.Customer{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// GormSupplierRepository implements archive.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uint) (*archive.Supplier, error) {
	var supplier archive.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByName finds a supplier by its exact name
func (r *GormSupplierRepository) FindByName(ctx context.Context, name string) (*archive.Supplier, error) {
	var supplier archive.Supplier
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll returns all suppliers ordered by name
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]archive.Supplier, error) {
	var suppliers []archive.Supplier
	if err := r.db.WithContext(ctx).Order("name").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Save inserts the supplier when its ID is zero, updates it otherwise
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *archive.Supplier) error {
	if supplier.ID == 0 {
		return r.db.WithContext(ctx).Create(supplier).Error
	}
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes a supplier by ID
func (r *GormSupplierRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&archive.Supplier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// IsEmpty reports whether the suppliers table has no rows
func (r *GormSupplierRepository) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&archive.Supplier{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
