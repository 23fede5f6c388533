package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
)

// ReturnRecord represents a customer return. Returned quantity is added
// back to stock and the refund (quantity * price) counts against profit.
type ReturnRecord struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ReturnNo    string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"return_no"`
	ProductName string          `gorm:"type:varchar(200);not null;index" json:"product_name"`
	Customer    string          `gorm:"type:varchar(200)" json:"customer"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	Reason      string          `gorm:"type:varchar(500)" json:"reason"`
	ReturnDate  time.Time       `gorm:"not null;index" json:"return_date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (ReturnRecord) TableName() string {
	return "return_records"
}

// NewReturnRecord creates a new customer return record
func NewReturnRecord(returnNo, productName, customer string, quantity, price decimal.Decimal, reason string, returnDate time.Time) (*ReturnRecord, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if returnNo == "" {
		returnNo = GenerateOrderNo(PrefixReturn, returnDate)
	}

	return &ReturnRecord{
		ReturnNo:    returnNo,
		ProductName: productName,
		Customer:    customer,
		Quantity:    quantity,
		Price:       price,
		Reason:      reason,
		ReturnDate:  returnDate,
	}, nil
}

// RefundAmount returns quantity * price
func (r *ReturnRecord) RefundAmount() decimal.Decimal {
	return r.Quantity.Mul(r.Price)
}
