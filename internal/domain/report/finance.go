package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/ledger"
)

// FinancialRow is one product line of the financial summary
type FinancialRow struct {
	ProductName  string          `json:"product_name"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalRefund  decimal.Decimal `json:"total_refund"`
	SalesProfit  decimal.Decimal `json:"sales_profit"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	ProfitMargin string          `json:"profit_margin"`
}

// Margin renders profit/revenue as a percentage string, returning the
// "0%" sentinel when revenue is zero.
func Margin(profit, revenue decimal.Decimal) string {
	if revenue.IsZero() {
		return "0%"
	}
	return profit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(1).String() + "%"
}

// filter restricts a snapshot to the inclusive date window. Inbound
// filters on inbound date, outbound on outbound date, returns on return
// date; wholesale orders filter on the parent order date, carrying all
// of their items with them.
func (s LedgerSnapshot) filter(window ledger.DateRange) LedgerSnapshot {
	out := LedgerSnapshot{}
	for _, r := range s.Inbound {
		if window.Contains(r.InboundDate) {
			out.Inbound = append(out.Inbound, r)
		}
	}
	for _, sale := range s.Outbound {
		if window.Contains(sale.OutboundDate) {
			out.Outbound = append(out.Outbound, sale)
		}
	}
	for _, ret := range s.Returns {
		if window.Contains(ret.ReturnDate) {
			out.Returns = append(out.Returns, ret)
		}
	}
	for _, order := range s.Wholesale {
		if window.Contains(order.OrderDate) {
			out.Wholesale = append(out.Wholesale, order)
		}
	}
	return out
}

// BuildFinancialSummary derives per-product cost, revenue, refund and
// profit for the inclusive [start, end] window. Products with no
// transactions inside the window are absent from the result. Cost uses
// accepted-quantity pricing of ACCEPTED receipts; revenue combines
// retail sales and wholesale items.
func BuildFinancialSummary(snap LedgerSnapshot, window ledger.DateRange) []FinancialRow {
	filtered := snap.filter(window)
	rows := make([]FinancialRow, 0)

	for _, name := range filtered.productNames() {
		cost := decimal.Zero
		for _, r := range filtered.Inbound {
			if r.ProductName == name {
				cost = cost.Add(r.AcceptedCost())
			}
		}

		revenue := decimal.Zero
		for _, sale := range filtered.Outbound {
			if sale.ProductName == name {
				revenue = revenue.Add(sale.TotalAmount())
			}
		}
		for _, order := range filtered.Wholesale {
			for _, item := range order.Items {
				if item.ProductName == name {
					revenue = revenue.Add(item.Amount())
				}
			}
		}

		refund := decimal.Zero
		for _, ret := range filtered.Returns {
			if ret.ProductName == name {
				refund = refund.Add(ret.RefundAmount())
			}
		}

		gross := revenue.Sub(cost).Sub(refund)
		rows = append(rows, FinancialRow{
			ProductName:  name,
			TotalCost:    cost,
			TotalRevenue: revenue,
			TotalRefund:  refund,
			SalesProfit:  revenue.Sub(cost),
			GrossProfit:  gross,
			ProfitMargin: Margin(gross, revenue),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].GrossProfit.GreaterThan(rows[j].GrossProfit)
	})

	return rows
}
