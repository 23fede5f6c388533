package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
)

// OutboundSale represents a single-product retail sale. It has no
// status; every sale is fully counted against stock.
type OutboundSale struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderNo      string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_no"`
	ProductName  string          `gorm:"type:varchar(200);not null;index" json:"product_name"`
	Customer     string          `gorm:"type:varchar(200)" json:"customer"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	OutboundDate time.Time       `gorm:"not null;index" json:"outbound_date"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (OutboundSale) TableName() string {
	return "outbound_sales"
}

// NewOutboundSale creates a new retail sale record
func NewOutboundSale(orderNo, productName, customer string, quantity, price decimal.Decimal, outboundDate time.Time) (*OutboundSale, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if orderNo == "" {
		orderNo = GenerateOrderNo(PrefixOutbound, outboundDate)
	}

	return &OutboundSale{
		OrderNo:      orderNo,
		ProductName:  productName,
		Customer:     customer,
		Quantity:     quantity,
		Price:        price,
		OutboundDate: outboundDate,
	}, nil
}

// TotalAmount returns quantity * price
func (s *OutboundSale) TotalAmount() decimal.Decimal {
	return s.Quantity.Mul(s.Price)
}
