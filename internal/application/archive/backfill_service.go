package archive

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/archive"
	"github.com/wms/backend/internal/domain/ledger"
)

// BackfillService seeds empty master-data tables from names already
// present in the transaction ledgers. Each table is gated on its own
// emptiness, so running it again after records exist is a no-op for
// that table.
type BackfillService struct {
	products  archive.ProductRepository
	customers archive.CustomerRepository
	suppliers archive.SupplierRepository
	inbound   ledger.InboundRepository
	outbound  ledger.OutboundRepository
	wholesale ledger.WholesaleRepository
	logger    *zap.Logger
}

// NewBackfillService creates a new BackfillService
func NewBackfillService(
	products archive.ProductRepository,
	customers archive.CustomerRepository,
	suppliers archive.SupplierRepository,
	inbound ledger.InboundRepository,
	outbound ledger.OutboundRepository,
	wholesale ledger.WholesaleRepository,
	logger *zap.Logger,
) *BackfillService {
	return &BackfillService{
		products:  products,
		customers: customers,
		suppliers: suppliers,
		inbound:   inbound,
		outbound:  outbound,
		wholesale: wholesale,
		logger:    logger,
	}
}

// Run backfills all three master-data tables. Products come from the
// inbound, outbound and wholesale ledgers; suppliers from inbound;
// customers from outbound and wholesale. Backfilled records carry the
// name only.
func (s *BackfillService) Run(ctx context.Context) error {
	if err := s.backfillProducts(ctx); err != nil {
		return err
	}
	if err := s.backfillSuppliers(ctx); err != nil {
		return err
	}
	return s.backfillCustomers(ctx)
}

func (s *BackfillService) backfillProducts(ctx context.Context) error {
	empty, err := s.products.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	names := newNameSet()
	inboundNames, err := s.inbound.DistinctProductNames(ctx)
	if err != nil {
		return err
	}
	names.addAll(inboundNames)

	outboundNames, err := s.outbound.DistinctProductNames(ctx)
	if err != nil {
		return err
	}
	names.addAll(outboundNames)

	wholesaleNames, err := s.wholesale.DistinctProductNames(ctx)
	if err != nil {
		return err
	}
	names.addAll(wholesaleNames)

	for _, name := range names.sorted() {
		product, err := archive.NewProduct(name, "", "", decimal.Zero, "")
		if err != nil {
			continue
		}
		if err := s.products.Save(ctx, product); err != nil {
			return err
		}
	}

	if n := names.len(); n > 0 {
		s.logger.Info("backfilled product archive from ledgers", zap.Int("count", n))
	}
	return nil
}

func (s *BackfillService) backfillSuppliers(ctx context.Context) error {
	empty, err := s.suppliers.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	names := newNameSet()
	supplierNames, err := s.inbound.DistinctSuppliers(ctx)
	if err != nil {
		return err
	}
	names.addAll(supplierNames)

	for _, name := range names.sorted() {
		supplier, err := archive.NewSupplier(name, "", "", "", "")
		if err != nil {
			continue
		}
		if err := s.suppliers.Save(ctx, supplier); err != nil {
			return err
		}
	}

	if n := names.len(); n > 0 {
		s.logger.Info("backfilled supplier archive from ledgers", zap.Int("count", n))
	}
	return nil
}

func (s *BackfillService) backfillCustomers(ctx context.Context) error {
	empty, err := s.customers.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	names := newNameSet()
	outboundNames, err := s.outbound.DistinctCustomers(ctx)
	if err != nil {
		return err
	}
	names.addAll(outboundNames)

	wholesaleNames, err := s.wholesale.DistinctCustomers(ctx)
	if err != nil {
		return err
	}
	names.addAll(wholesaleNames)

	for _, name := range names.sorted() {
		customer, err := archive.NewCustomer(name, "", "", "", "")
		if err != nil {
			continue
		}
		if err := s.customers.Save(ctx, customer); err != nil {
			return err
		}
	}

	if n := names.len(); n > 0 {
		s.logger.Info("backfilled customer archive from ledgers", zap.Int("count", n))
	}
	return nil
}

// nameSet deduplicates non-blank names
type nameSet struct {
	seen map[string]struct{}
}

func newNameSet() *nameSet {
	return &nameSet{seen: make(map[string]struct{})}
}

func (n *nameSet) addAll(names []string) {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		n.seen[name] = struct{}{}
	}
}

func (n *nameSet) sorted() []string {
	out := make([]string, 0, len(n.seen))
	for name := range n.seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (n *nameSet) len() int {
	return len(n.seen)
}
