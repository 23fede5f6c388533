// Package archive manages master-data records for products, customers
// and suppliers, including the one-time backfill that seeds them from
// the transaction ledgers.
package archive

import (
	"context"

	"github.com/wms/backend/internal/domain/archive"
)

// ArchiveService provides CRUD over the three master-data tables
type ArchiveService struct {
	products  archive.ProductRepository
	customers archive.CustomerRepository
	suppliers archive.SupplierRepository
}

// NewArchiveService creates a new ArchiveService
func NewArchiveService(
	products archive.ProductRepository,
	customers archive.CustomerRepository,
	suppliers archive.SupplierRepository,
) *ArchiveService {
	return &ArchiveService{
		products:  products,
		customers: customers,
		suppliers: suppliers,
	}
}

// CreateProduct registers a new product master record
func (s *ArchiveService) CreateProduct(ctx context.Context, req ProductRequest) (*archive.Product, error) {
	product, err := archive.NewProduct(req.Name, req.Spec, req.Unit, req.Price, req.Remark)
	if err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct edits an existing product master record
func (s *ArchiveService) UpdateProduct(ctx context.Context, id uint, req ProductRequest) (*archive.Product, error) {
	if _, err := archive.NewProduct(req.Name, req.Spec, req.Unit, req.Price, req.Remark); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = req.Name
	product.Spec = req.Spec
	product.Unit = req.Unit
	product.Price = req.Price
	product.Remark = req.Remark

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ArchiveService) GetProduct(ctx context.Context, id uint) (*archive.Product, error) {
	return s.products.FindByID(ctx, id)
}

// ListProducts retrieves all products
func (s *ArchiveService) ListProducts(ctx context.Context) ([]archive.Product, error) {
	return s.products.FindAll(ctx)
}

// DeleteProduct removes a product master record
func (s *ArchiveService) DeleteProduct(ctx context.Context, id uint) error {
	return s.products.Delete(ctx, id)
}

// CreateCustomer registers a new customer master record
func (s *ArchiveService) CreateCustomer(ctx context.Context, req PartnerRequest) (*archive.Customer, error) {
	customer, err := archive.NewCustomer(req.Name, req.ContactPerson, req.Phone, req.Address, req.Remark)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer edits an existing customer master record
func (s *ArchiveService) UpdateCustomer(ctx context.Context, id uint, req PartnerRequest) (*archive.Customer, error) {
	if _, err := archive.NewCustomer(req.Name, req.ContactPerson, req.Phone, req.Address, req.Remark); err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Name = req.Name
	customer.ContactPerson = req.ContactPerson
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.Remark = req.Remark

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *ArchiveService) GetCustomer(ctx context.Context, id uint) (*archive.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

// ListCustomers retrieves all customers
func (s *ArchiveService) ListCustomers(ctx context.Context) ([]archive.Customer, error) {
	return s.customers.FindAll(ctx)
}

// DeleteCustomer removes a customer master record
func (s *ArchiveService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.customers.Delete(ctx, id)
}

// CreateSupplier registers a new supplier master record
func (s *ArchiveService) CreateSupplier(ctx context.Context, req PartnerRequest) (*archive.Supplier, error) {
	supplier, err := archive.NewSupplier(req.Name, req.ContactPerson, req.Phone, req.Address, req.Remark)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier edits an existing supplier master record
func (s *ArchiveService) UpdateSupplier(ctx context.Context, id uint, req PartnerRequest) (*archive.Supplier, error) {
	if _, err := archive.NewSupplier(req.Name, req.ContactPerson, req.Phone, req.Address, req.Remark); err != nil {
		return nil, err
	}

	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	supplier.Name = req.Name
	supplier.ContactPerson = req.ContactPerson
	supplier.Phone = req.Phone
	supplier.Address = req.Address
	supplier.Remark = req.Remark

	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *ArchiveService) GetSupplier(ctx context.Context, id uint) (*archive.Supplier, error) {
	return s.suppliers.FindByID(ctx, id)
}

// ListSuppliers retrieves all suppliers
func (s *ArchiveService) ListSuppliers(ctx context.Context) ([]archive.Supplier, error) {
	return s.suppliers.FindAll(ctx)
}

// DeleteSupplier removes a supplier master record
func (s *ArchiveService) DeleteSupplier(ctx context.Context, id uint) error {
	return s.suppliers.Delete(ctx, id)
}
