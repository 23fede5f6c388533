package ledger

import (
	"context"
	"time"

	"github.com/wms/backend/internal/domain/ledger"
)

// WholesaleService handles multi-item wholesale order operations
type WholesaleService struct {
	repo ledger.WholesaleRepository
	now  func() time.Time
}

// NewWholesaleService creates a new WholesaleService
func NewWholesaleService(repo ledger.WholesaleRepository) *WholesaleService {
	return &WholesaleService{repo: repo, now: time.Now}
}

// Create registers a new wholesale order with its items
func (s *WholesaleService) Create(ctx context.Context, req WholesaleOrderRequest) (*ledger.WholesaleOrder, error) {
	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = s.now()
	}

	order := ledger.NewWholesaleOrder(req.OrderNo, req.Customer, req.Address, orderDate, req.Remark)
	if err := order.ReplaceItems(toItems(req.Items)); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update edits an order and replaces its item list. The repository
// performs the delete-then-reinsert of items inside one transaction.
func (s *WholesaleService) Update(ctx context.Context, id uint, req WholesaleOrderRequest) (*ledger.WholesaleOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OrderNo != "" {
		order.OrderNo = req.OrderNo
	}
	order.Customer = req.Customer
	order.Address = req.Address
	order.Remark = req.Remark
	if !req.OrderDate.IsZero() {
		order.OrderDate = req.OrderDate
	}
	if err := order.ReplaceItems(toItems(req.Items)); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID retrieves an order with its items by ID
func (s *WholesaleService) GetByID(ctx context.Context, id uint) (*ledger.WholesaleOrder, error) {
	return s.repo.FindByID(ctx, id)
}

// List retrieves all orders with their items
func (s *WholesaleService) List(ctx context.Context) ([]ledger.WholesaleOrder, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes an order and its items
func (s *WholesaleService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func toItems(reqs []WholesaleItemRequest) []ledger.WholesaleItem {
	items := make([]ledger.WholesaleItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, ledger.WholesaleItem{
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Price:       r.Price,
		})
	}
	return items
}
