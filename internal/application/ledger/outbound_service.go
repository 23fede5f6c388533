package ledger

import (
	"context"
	"time"

	"github.com/wms/backend/internal/domain/ledger"
)

// OutboundService handles outbound sale operations
type OutboundService struct {
	repo ledger.OutboundRepository
	now  func() time.Time
}

// NewOutboundService creates a new OutboundService
func NewOutboundService(repo ledger.OutboundRepository) *OutboundService {
	return &OutboundService{repo: repo, now: time.Now}
}

// Create registers a new retail sale
func (s *OutboundService) Create(ctx context.Context, req OutboundRequest) (*ledger.OutboundSale, error) {
	outboundDate := req.OutboundDate
	if outboundDate.IsZero() {
		outboundDate = s.now()
	}

	sale, err := ledger.NewOutboundSale(req.OrderNo, req.ProductName, req.Customer, req.Quantity, req.Price, outboundDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Update edits an existing sale
func (s *OutboundService) Update(ctx context.Context, id uint, req OutboundRequest) (*ledger.OutboundSale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	orderNo := req.OrderNo
	if orderNo == "" {
		orderNo = sale.OrderNo
	}
	draft, err := ledger.NewOutboundSale(orderNo, req.ProductName, req.Customer, req.Quantity, req.Price, req.OutboundDate)
	if err != nil {
		return nil, err
	}

	sale.OrderNo = draft.OrderNo
	sale.ProductName = draft.ProductName
	sale.Customer = draft.Customer
	sale.Quantity = draft.Quantity
	sale.Price = draft.Price
	if !req.OutboundDate.IsZero() {
		sale.OutboundDate = req.OutboundDate
	}

	if err := s.repo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetByID retrieves a sale by ID
func (s *OutboundService) GetByID(ctx context.Context, id uint) (*ledger.OutboundSale, error) {
	return s.repo.FindByID(ctx, id)
}

// List retrieves all sales
func (s *OutboundService) List(ctx context.Context) ([]ledger.OutboundSale, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes a sale
func (s *OutboundService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
