package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
)

// ReceiptStatus represents the acceptance status of an inbound receipt
type ReceiptStatus string

const (
	ReceiptStatusPending  ReceiptStatus = "PENDING_ACCEPTANCE"
	ReceiptStatusAccepted ReceiptStatus = "ACCEPTED"
	ReceiptStatusRejected ReceiptStatus = "REJECTED"
)

// IsValid checks if the status is a valid ReceiptStatus
func (s ReceiptStatus) IsValid() bool {
	switch s {
	case ReceiptStatusPending, ReceiptStatusAccepted, ReceiptStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of ReceiptStatus
func (s ReceiptStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the status is a terminal state
func (s ReceiptStatus) IsTerminal() bool {
	return s == ReceiptStatusAccepted || s == ReceiptStatusRejected
}

// InboundReceipt represents a purchase intake record.
// It is created pending acceptance and mutated exactly once by the
// quality inspection; only the accepted quantity of an ACCEPTED receipt
// contributes to stock and cost.
type InboundReceipt struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	OrderNo          string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_no"`
	ProductName      string          `gorm:"type:varchar(200);not null;index" json:"product_name"`
	Supplier         string          `gorm:"type:varchar(200)" json:"supplier"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Price            decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	InboundDate      time.Time       `gorm:"not null;index" json:"inbound_date"`
	Status           ReceiptStatus   `gorm:"type:varchar(20);not null;default:'PENDING_ACCEPTANCE'" json:"status"`
	AcceptedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"accepted_quantity"`
	RejectedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"rejected_quantity"`
	CheckDate        *time.Time      `json:"check_date,omitempty"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (InboundReceipt) TableName() string {
	return "inbound_receipts"
}

// NewInboundReceipt creates a new receipt in PENDING_ACCEPTANCE state
func NewInboundReceipt(orderNo, productName, supplier string, quantity, price decimal.Decimal, inboundDate time.Time) (*InboundReceipt, error) {
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
		orderNo = GenerateOrderNo(PrefixInbound, inboundDate)
	}

	return &InboundReceipt{
		OrderNo:          orderNo,
		ProductName:      productName,
		Supplier:         supplier,
		Quantity:         quantity,
		Price:            price,
		InboundDate:      inboundDate,
		Status:           ReceiptStatusPending,
		AcceptedQuantity: decimal.Zero,
		RejectedQuantity: decimal.Zero,
	}, nil
}

// IsPending returns true if the receipt still awaits inspection
func (r *InboundReceipt) IsPending() bool {
	return r.Status == ReceiptStatusPending
}

// RecordAcceptance applies the quality inspection result.
// The accepted quantity is clamped to [0, Quantity]; the rejected
// quantity is the remainder, and the status becomes REJECTED when
// nothing was accepted.
//
// Re-running acceptance on a non-pending receipt rewrites historical
// stock and cost figures, so it is refused unless force is set; callers
// are expected to confirm with the user before forcing.
func (r *InboundReceipt) RecordAcceptance(acceptedQty decimal.Decimal, at time.Time, force bool) error {
	if !r.IsPending() && !force {
		return shared.NewDomainError("ACCEPTANCE_ALREADY_RECORDED",
			"Receipt has already been inspected; re-inspection changes historical stock and cost figures")
	}

	if acceptedQty.IsNegative() {
		acceptedQty = decimal.Zero
	}
	if acceptedQty.GreaterThan(r.Quantity) {
		acceptedQty = r.Quantity
	}

	r.AcceptedQuantity = acceptedQty
	r.RejectedQuantity = r.Quantity.Sub(acceptedQty)
	r.CheckDate = &at
	if acceptedQty.IsZero() {
		r.Status = ReceiptStatusRejected
	} else {
		r.Status = ReceiptStatusAccepted
	}
	r.UpdatedAt = at

	return nil
}

// AcceptedCost returns the cost this receipt contributes to stock
// valuation: accepted quantity times unit price, zero unless ACCEPTED.
func (r *InboundReceipt) AcceptedCost() decimal.Decimal {
	if r.Status != ReceiptStatusAccepted {
		return decimal.Zero
	}
	return r.AcceptedQuantity.Mul(r.Price)
}

// TotalAmount returns the ordered amount (quantity * price), regardless
// of acceptance outcome. Display figure for the purchase document.
func (r *InboundReceipt) TotalAmount() decimal.Decimal {
	return r.Quantity.Mul(r.Price)
}
