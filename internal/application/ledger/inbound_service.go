package ledger

import (
	"context"
	"time"

	"github.com/wms/backend/internal/domain/ledger"
)

// WarningEditInspected is returned alongside successful updates of a
// receipt that already left PENDING_ACCEPTANCE: the edit retroactively
// changes historical stock and cost figures.
const WarningEditInspected = "Receipt has already been inspected; editing it changes historical stock and cost figures"

// InboundService handles inbound receipt operations including the
// acceptance transition.
type InboundService struct {
	repo ledger.InboundRepository
	now  func() time.Time
}

// NewInboundService creates a new InboundService
func NewInboundService(repo ledger.InboundRepository) *InboundService {
	return &InboundService{repo: repo, now: time.Now}
}

// Create registers a new receipt in PENDING_ACCEPTANCE state
func (s *InboundService) Create(ctx context.Context, req InboundRequest) (*ledger.InboundReceipt, error) {
	inboundDate := req.InboundDate
	if inboundDate.IsZero() {
		inboundDate = s.now()
	}

	receipt, err := ledger.NewInboundReceipt(req.OrderNo, req.ProductName, req.Supplier, req.Quantity, req.Price, inboundDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// Update edits an existing receipt. Editing a receipt that has already
// been inspected is allowed but flagged with a warning, since the
// reconciliation engine re-derives history from the stored rows.
func (s *InboundService) Update(ctx context.Context, id uint, req InboundRequest) (*ledger.InboundReceipt, string, error) {
	receipt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	orderNo := req.OrderNo
	if orderNo == "" {
		orderNo = receipt.OrderNo
	}
	draft, err := ledger.NewInboundReceipt(orderNo, req.ProductName, req.Supplier, req.Quantity, req.Price, req.InboundDate)
	if err != nil {
		return nil, "", err
	}

	receipt.OrderNo = draft.OrderNo
	receipt.ProductName = draft.ProductName
	receipt.Supplier = draft.Supplier
	receipt.Quantity = draft.Quantity
	receipt.Price = draft.Price
	if !req.InboundDate.IsZero() {
		receipt.InboundDate = req.InboundDate
	}

	warning := ""
	if !receipt.IsPending() {
		warning = WarningEditInspected
		// Keep the invariant accepted + rejected == quantity intact
		// when the ordered quantity was edited after inspection.
		receipt.RejectedQuantity = receipt.Quantity.Sub(receipt.AcceptedQuantity)
	}

	if err := s.repo.Save(ctx, receipt); err != nil {
		return nil, "", err
	}
	return receipt, warning, nil
}

// RecordAcceptance applies the quality inspection result to a receipt
func (s *InboundService) RecordAcceptance(ctx context.Context, id uint, req AcceptanceRequest) (*ledger.InboundReceipt, error) {
	receipt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := receipt.RecordAcceptance(req.AcceptedQuantity, s.now(), req.Force); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetByID retrieves a receipt by ID
func (s *InboundService) GetByID(ctx context.Context, id uint) (*ledger.InboundReceipt, error) {
	return s.repo.FindByID(ctx, id)
}

// List retrieves all receipts
func (s *InboundService) List(ctx context.Context) ([]ledger.InboundReceipt, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes a receipt
func (s *InboundService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
