package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// InboundRequest carries the fields of an inbound receipt create/update
type InboundRequest struct {
	OrderNo     string          `json:"order_no"`
	ProductName string          `json:"product_name" binding:"required,notblank"`
	Supplier    string          `json:"supplier"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	InboundDate time.Time       `json:"inbound_date"`
}

// AcceptanceRequest carries the quality inspection result
type AcceptanceRequest struct {
	AcceptedQuantity decimal.Decimal `json:"accepted_quantity"`
	// Force allows re-inspection of an already inspected receipt.
	// Callers are expected to confirm with the user first.
	Force bool `json:"force"`
}

// OutboundRequest carries the fields of an outbound sale create/update
type OutboundRequest struct {
	OrderNo      string          `json:"order_no"`
	ProductName  string          `json:"product_name" binding:"required,notblank"`
	Customer     string          `json:"customer"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	OutboundDate time.Time       `json:"outbound_date"`
}

// ReturnRequest carries the fields of a return record create/update
type ReturnRequest struct {
	ReturnNo    string          `json:"return_no"`
	ProductName string          `json:"product_name" binding:"required,notblank"`
	Customer    string          `json:"customer"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Reason      string          `json:"reason"`
	ReturnDate  time.Time       `json:"return_date"`
}

// WholesaleItemRequest is one line of a wholesale order request
type WholesaleItemRequest struct {
	ProductName string          `json:"product_name" binding:"required,notblank"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Price       decimal.Decimal `json:"price"`
}

// WholesaleOrderRequest carries a wholesale order with its items
type WholesaleOrderRequest struct {
	OrderNo   string                 `json:"order_no"`
	Customer  string                 `json:"customer"`
	Address   string                 `json:"address"`
	OrderDate time.Time              `json:"order_date"`
	Remark    string                 `json:"remark"`
	Items     []WholesaleItemRequest `json:"items" binding:"required,min=1"`
}
