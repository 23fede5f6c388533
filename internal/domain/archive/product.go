package archive

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
)

// Product is a master-data record. Ledger entries reference products by
// name, not by ID, so Name is the effective key.
type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	Spec      string          `gorm:"type:varchar(200)" json:"spec"`
	Unit      string          `gorm:"type:varchar(20)" json:"unit"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
	Remark    string          `gorm:"type:varchar(500)" json:"remark"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product master record
func NewProduct(name, spec, unit string, price decimal.Decimal, remark string) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return &Product{
		Name:   name,
		Spec:   spec,
		Unit:   unit,
		Price:  price,
		Remark: remark,
	}, nil
}
