package ledger

import (
	"context"
	"time"

	"github.com/wms/backend/internal/domain/ledger"
)

// ReturnService handles customer return operations
type ReturnService struct {
	repo ledger.ReturnRepository
	now  func() time.Time
}

// NewReturnService creates a new ReturnService
func NewReturnService(repo ledger.ReturnRepository) *ReturnService {
	return &ReturnService{repo: repo, now: time.Now}
}

// Create registers a new return record
func (s *ReturnService) Create(ctx context.Context, req ReturnRequest) (*ledger.ReturnRecord, error) {
	returnDate := req.ReturnDate
	if returnDate.IsZero() {
		returnDate = s.now()
	}

	record, err := ledger.NewReturnRecord(req.ReturnNo, req.ProductName, req.Customer, req.Quantity, req.Price, req.Reason, returnDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update edits an existing return record
func (s *ReturnService) Update(ctx context.Context, id uint, req ReturnRequest) (*ledger.ReturnRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	returnNo := req.ReturnNo
	if returnNo == "" {
		returnNo = record.ReturnNo
	}
	draft, err := ledger.NewReturnRecord(returnNo, req.ProductName, req.Customer, req.Quantity, req.Price, req.Reason, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	record.ReturnNo = draft.ReturnNo
	record.ProductName = draft.ProductName
	record.Customer = draft.Customer
	record.Quantity = draft.Quantity
	record.Price = draft.Price
	record.Reason = draft.Reason
	if !req.ReturnDate.IsZero() {
		record.ReturnDate = req.ReturnDate
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByID retrieves a return record by ID
func (s *ReturnService) GetByID(ctx context.Context, id uint) (*ledger.ReturnRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// List retrieves all return records
func (s *ReturnService) List(ctx context.Context) ([]ledger.ReturnRecord, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes a return record
func (s *ReturnService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
