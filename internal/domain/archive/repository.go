package archive

import "context"

// ProductRepository persists product master data
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
	IsEmpty(ctx context.Context) (bool, error)
}

// CustomerRepository persists customer master data
type CustomerRepository interface {
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindByName(ctx context.Context, name string) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	IsEmpty(ctx context.Context) (bool, error)
}

// SupplierRepository persists supplier master data
type SupplierRepository interface {
	FindByID(ctx context.Context, id uint) (*Supplier, error)
	FindByName(ctx context.Context, name string) (*Supplier, error)
	FindAll(ctx context.Context) ([]Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uint) error
	IsEmpty(ctx context.Context) (bool, error)
}
