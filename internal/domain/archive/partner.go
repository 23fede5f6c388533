package archive

import (
	"strings"
	"time"

	"github.com/wms/backend/internal/domain/shared"
)

// Customer is a master-data record for a buyer, referenced by name
// from the outbound and wholesale ledgers.
type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"contact_person"`
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`
	Address       string    `gorm:"type:varchar(500)" json:"address"`
	Remark        string    `gorm:"type:varchar(500)" json:"remark"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer master record
func NewCustomer(name, contactPerson, phone, address, remark string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	return &Customer{
		Name:          name,
		ContactPerson: contactPerson,
		Phone:         phone,
		Address:       address,
		Remark:        remark,
	}, nil
}

// Supplier is a master-data record for a vendor, referenced by name
// from the inbound ledger.
type Supplier struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"contact_person"`
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`
	Address       string    `gorm:"type:varchar(500)" json:"address"`
	Remark        string    `gorm:"type:varchar(500)" json:"remark"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier master record
func NewSupplier(name, contactPerson, phone, address, remark string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	return &Supplier{
		Name:          name,
		ContactPerson: contactPerson,
		Phone:         phone,
		Address:       address,
		Remark:        remark,
	}, nil
}
