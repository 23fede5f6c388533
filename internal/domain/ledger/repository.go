package ledger

import (
	"context"
	"time"
)

// DateRange is an inclusive [Start, End] window used by report queries.
// A zero Start or End leaves that side unbounded.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range (inclusive)
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// InboundRepository persists inbound receipts
type InboundRepository interface {
	FindByID(ctx context.Context, id uint) (*InboundReceipt, error)
	FindAll(ctx context.Context) ([]InboundReceipt, error)
	Save(ctx context.Context, receipt *InboundReceipt) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	DistinctProductNames(ctx context.Context) ([]string, error)
	DistinctSuppliers(ctx context.Context) ([]string, error)
}

// OutboundRepository persists outbound sales
type OutboundRepository interface {
	FindByID(ctx context.Context, id uint) (*OutboundSale, error)
	FindAll(ctx context.Context) ([]OutboundSale, error)
	Save(ctx context.Context, sale *OutboundSale) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	DistinctProductNames(ctx context.Context) ([]string, error)
	DistinctCustomers(ctx context.Context) ([]string, error)
}

// ReturnRepository persists customer returns
type ReturnRepository interface {
	FindByID(ctx context.Context, id uint) (*ReturnRecord, error)
	FindAll(ctx context.Context) ([]ReturnRecord, error)
	Save(ctx context.Context, record *ReturnRecord) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// WholesaleRepository persists wholesale orders together with their
// items. Save replaces the item list atomically.
type WholesaleRepository interface {
	FindByID(ctx context.Context, id uint) (*WholesaleOrder, error)
	FindAll(ctx context.Context) ([]WholesaleOrder, error)
	Save(ctx context.Context, order *WholesaleOrder) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	DistinctProductNames(ctx context.Context) ([]string, error)
	DistinctCustomers(ctx context.Context) ([]string, error)
}
