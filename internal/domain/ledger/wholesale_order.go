package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
)

// WholesaleItem is a line item of a wholesale order. Items are
// exclusively owned by their order and replaced wholesale on update.
type WholesaleItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductName string          `gorm:"type:varchar(200);not null;index" json:"product_name"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (WholesaleItem) TableName() string {
	return "wholesale_items"
}

// Amount returns quantity * price for this line
func (i *WholesaleItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Price)
}

// WholesaleOrder represents a multi-product sale to a wholesale
// customer. TotalAmount is the denormalized sum of its items.
type WholesaleOrder struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderNo     string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_no"`
	Customer    string          `gorm:"type:varchar(200)" json:"customer"`
	Address     string          `gorm:"type:varchar(500)" json:"address"`
	OrderDate   time.Time       `gorm:"not null;index" json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_amount"`
	Remark      string          `gorm:"type:varchar(500)" json:"remark"`
	Items       []WholesaleItem `gorm:"foreignKey:OrderID;references:ID" json:"items"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (WholesaleOrder) TableName() string {
	return "wholesale_orders"
}

// NewWholesaleOrder creates a new wholesale order with its items
func NewWholesaleOrder(orderNo, customer, address string, orderDate time.Time, remark string) *WholesaleOrder {
	if orderNo == "" {
		orderNo = GenerateWholesaleOrderNo(orderDate)
	}
	return &WholesaleOrder{
		OrderNo:     orderNo,
		Customer:    customer,
		Address:     address,
		OrderDate:   orderDate,
		TotalAmount: decimal.Zero,
		Remark:      remark,
		Items:       make([]WholesaleItem, 0),
	}
}

// AddItem appends a line item and recalculates the order total
func (o *WholesaleOrder) AddItem(productName string, quantity, price decimal.Decimal) error {
	if strings.TrimSpace(productName) == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	o.Items = append(o.Items, WholesaleItem{
		OrderID:     o.ID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
	})
	o.RecalculateTotal()

	return nil
}

// ReplaceItems swaps the full item list and recalculates the total.
// Persisting the swap is the repository's responsibility and must run
// inside a single transaction.
func (o *WholesaleOrder) ReplaceItems(items []WholesaleItem) error {
	if len(items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Wholesale order must have at least one item")
	}
	for idx := range items {
		if strings.TrimSpace(items[idx].ProductName) == "" {
			return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
		}
		if items[idx].Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if items[idx].Price.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
		}
		items[idx].OrderID = o.ID
	}

	o.Items = items
	o.RecalculateTotal()

	return nil
}

// RecalculateTotal recomputes the denormalized order total from items
func (o *WholesaleOrder) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount())
	}
	o.TotalAmount = total
}

// ItemCount returns the number of line items
func (o *WholesaleOrder) ItemCount() int {
	return len(o.Items)
}
