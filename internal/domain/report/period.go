package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/ledger"
)

// Granularity selects the calendar bucket size of a periodic report
type Granularity string

const (
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// IsValid checks if the granularity is a valid Granularity
func (g Granularity) IsValid() bool {
	return g == GranularityMonthly || g == GranularityYearly
}

// layout returns the time layout used as bucket label
func (g Granularity) layout() string {
	if g == GranularityYearly {
		return "2006"
	}
	return "2006-01"
}

// PeriodRow is one calendar bucket of the periodic report, with its
// per-product breakdown rolled up into period totals.
type PeriodRow struct {
	PeriodLabel string          `json:"period_label"`
	PeriodDate  time.Time       `json:"period_date"`
	Cost        decimal.Decimal `json:"cost"`
	Revenue     decimal.Decimal `json:"revenue"`
	Refund      decimal.Decimal `json:"refund"`
	Profit      decimal.Decimal `json:"profit"`
	ProfitMargin string         `json:"profit_margin"`
	Details     []FinancialRow  `json:"details"`
}

// BuildPeriodReport buckets every transaction in the window by calendar
// period and re-runs the per-product aggregation per bucket. Buckets
// are ordered most recent first. PeriodDate is the first day of the
// bucket; a label that fails to parse falls back to the zero time
// instead of failing the report.
func BuildPeriodReport(snap LedgerSnapshot, granularity Granularity, window ledger.DateRange) []PeriodRow {
	filtered := snap.filter(window)
	layout := granularity.layout()

	labels := make(map[string]struct{})
	for _, r := range filtered.Inbound {
		labels[r.InboundDate.Format(layout)] = struct{}{}
	}
	for _, sale := range filtered.Outbound {
		labels[sale.OutboundDate.Format(layout)] = struct{}{}
	}
	for _, ret := range filtered.Returns {
		labels[ret.ReturnDate.Format(layout)] = struct{}{}
	}
	for _, order := range filtered.Wholesale {
		labels[order.OrderDate.Format(layout)] = struct{}{}
	}

	ordered := make([]string, 0, len(labels))
	for label := range labels {
		ordered = append(ordered, label)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ordered)))

	rows := make([]PeriodRow, 0, len(ordered))
	for _, label := range ordered {
		details := BuildFinancialSummary(filtered.filterByLabel(label, layout), ledger.DateRange{})

		cost, revenue, refund := decimal.Zero, decimal.Zero, decimal.Zero
		for _, d := range details {
			cost = cost.Add(d.TotalCost)
			revenue = revenue.Add(d.TotalRevenue)
			refund = refund.Add(d.TotalRefund)
		}
		profit := revenue.Sub(cost).Sub(refund)

		rows = append(rows, PeriodRow{
			PeriodLabel:  label,
			PeriodDate:   parsePeriodDate(label, layout),
			Cost:         cost,
			Revenue:      revenue,
			Refund:       refund,
			Profit:       profit,
			ProfitMargin: Margin(profit, revenue),
			Details:      details,
		})
	}

	return rows
}

// filterByLabel restricts a snapshot to transactions whose date formats
// to the given bucket label. Label equality keeps bucket membership
// consistent with how the buckets were discovered, regardless of the
// time zone the dates were recorded in.
func (s LedgerSnapshot) filterByLabel(label, layout string) LedgerSnapshot {
	out := LedgerSnapshot{}
	for _, r := range s.Inbound {
		if r.InboundDate.Format(layout) == label {
			out.Inbound = append(out.Inbound, r)
		}
	}
	for _, sale := range s.Outbound {
		if sale.OutboundDate.Format(layout) == label {
			out.Outbound = append(out.Outbound, sale)
		}
	}
	for _, ret := range s.Returns {
		if ret.ReturnDate.Format(layout) == label {
			out.Returns = append(out.Returns, ret)
		}
	}
	for _, order := range s.Wholesale {
		if order.OrderDate.Format(layout) == label {
			out.Wholesale = append(out.Wholesale, order)
		}
	}
	return out
}

// parsePeriodDate converts a bucket label to the first day of the
// bucket, falling back to the zero time on parse failure.
func parsePeriodDate(label, layout string) time.Time {
	t, err := time.Parse(layout, label)
	if err != nil {
		return time.Time{}
	}
	return t
}
