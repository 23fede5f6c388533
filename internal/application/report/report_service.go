// Package report loads full ledger snapshots from storage and delegates
// the actual reconciliation to the pure functions in domain/report.
package report

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/ledger"
	"github.com/wms/backend/internal/domain/report"
)

// DashboardSummary carries the headline counts and gross amounts shown
// on the landing view. Any ledger that fails to load contributes zeros
// instead of failing the whole summary.
type DashboardSummary struct {
	InboundCount    int64           `json:"inbound_count"`
	OutboundCount   int64           `json:"outbound_count"`
	ReturnCount     int64           `json:"return_count"`
	WholesaleCount  int64           `json:"wholesale_count"`
	InboundAmount   decimal.Decimal `json:"inbound_amount"`
	OutboundAmount  decimal.Decimal `json:"outbound_amount"`
	ReturnAmount    decimal.Decimal `json:"return_amount"`
	WholesaleAmount decimal.Decimal `json:"wholesale_amount"`
	ProductCount    int             `json:"product_count"`
}

// ReportService derives inventory, financial and periodic reports from
// the transaction ledgers. Every report is recomputed from a fresh
// snapshot on each call; nothing is cached.
type ReportService struct {
	inbound   ledger.InboundRepository
	outbound  ledger.OutboundRepository
	returns   ledger.ReturnRepository
	wholesale ledger.WholesaleRepository
	logger    *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	inbound ledger.InboundRepository,
	outbound ledger.OutboundRepository,
	returns ledger.ReturnRepository,
	wholesale ledger.WholesaleRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		inbound:   inbound,
		outbound:  outbound,
		returns:   returns,
		wholesale: wholesale,
		logger:    logger,
	}
}

// snapshot loads all four ledgers in full
func (s *ReportService) snapshot(ctx context.Context) (report.LedgerSnapshot, error) {
	snap := report.LedgerSnapshot{}

	var err error
	if snap.Inbound, err = s.inbound.FindAll(ctx); err != nil {
		return snap, err
	}
	if snap.Outbound, err = s.outbound.FindAll(ctx); err != nil {
		return snap, err
	}
	if snap.Returns, err = s.returns.FindAll(ctx); err != nil {
		return snap, err
	}
	if snap.Wholesale, err = s.wholesale.FindAll(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}

// InventorySummary recomputes current stock and valuation per product
func (s *ReportService) InventorySummary(ctx context.Context) ([]report.InventoryRow, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildInventorySummary(snap), nil
}

// FinancialSummary recomputes per-product financials for the window
func (s *ReportService) FinancialSummary(ctx context.Context, window ledger.DateRange) ([]report.FinancialRow, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildFinancialSummary(snap, window), nil
}

// PeriodReport buckets windowed financials by calendar month or year
func (s *ReportService) PeriodReport(ctx context.Context, granularity report.Granularity, window ledger.DateRange) ([]report.PeriodRow, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.BuildPeriodReport(snap, granularity, window), nil
}

// Dashboard aggregates headline totals across all ledgers. A ledger
// that cannot be read is logged and reported as zero so the dashboard
// always renders.
func (s *ReportService) Dashboard(ctx context.Context) *DashboardSummary {
	summary := &DashboardSummary{
		InboundAmount:   decimal.Zero,
		OutboundAmount:  decimal.Zero,
		ReturnAmount:    decimal.Zero,
		WholesaleAmount: decimal.Zero,
	}

	products := make(map[string]struct{})
	trackProduct := func(name string) {
		if strings.TrimSpace(name) != "" {
			products[name] = struct{}{}
		}
	}

	if receipts, err := s.inbound.FindAll(ctx); err != nil {
		s.logger.Warn("dashboard: inbound ledger unavailable", zap.Error(err))
	} else {
		summary.InboundCount = int64(len(receipts))
		for _, r := range receipts {
			summary.InboundAmount = summary.InboundAmount.Add(r.TotalAmount())
			trackProduct(r.ProductName)
		}
	}

	if sales, err := s.outbound.FindAll(ctx); err != nil {
		s.logger.Warn("dashboard: outbound ledger unavailable", zap.Error(err))
	} else {
		summary.OutboundCount = int64(len(sales))
		for _, sale := range sales {
			summary.OutboundAmount = summary.OutboundAmount.Add(sale.TotalAmount())
			trackProduct(sale.ProductName)
		}
	}

	if records, err := s.returns.FindAll(ctx); err != nil {
		s.logger.Warn("dashboard: return ledger unavailable", zap.Error(err))
	} else {
		summary.ReturnCount = int64(len(records))
		for _, ret := range records {
			summary.ReturnAmount = summary.ReturnAmount.Add(ret.RefundAmount())
			trackProduct(ret.ProductName)
		}
	}

	if orders, err := s.wholesale.FindAll(ctx); err != nil {
		s.logger.Warn("dashboard: wholesale ledger unavailable", zap.Error(err))
	} else {
		summary.WholesaleCount = int64(len(orders))
		for _, order := range orders {
			summary.WholesaleAmount = summary.WholesaleAmount.Add(order.TotalAmount)
			for _, item := range order.Items {
				trackProduct(item.ProductName)
			}
		}
	}

	summary.ProductCount = len(products)
	return summary
}
