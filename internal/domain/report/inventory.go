// Package report implements the reconciliation engine: pure functions
// that derive stock levels and financial summaries from full snapshots
// of the four transaction ledgers. Nothing here touches storage, so
// every computation is an idempotent function of its inputs.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/ledger"
)

// InventoryRow is one product line of the inventory summary
type InventoryRow struct {
	ProductName   string          `json:"product_name"`
	TotalInbound  decimal.Decimal `json:"total_inbound"`
	TotalOutbound decimal.Decimal `json:"total_outbound"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	AvgUnitCost   decimal.Decimal `json:"avg_unit_cost"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// LedgerSnapshot carries full-table snapshots of all four ledgers.
// Wholesale items are flattened together with their parent order date
// so date-windowed reports can filter them by order date.
type LedgerSnapshot struct {
	Inbound   []ledger.InboundReceipt
	Outbound  []ledger.OutboundSale
	Returns   []ledger.ReturnRecord
	Wholesale []ledger.WholesaleOrder
}

// productNames returns the distinct non-blank product names across all
// four ledgers, in first-seen order. Matching is exact string equality;
// only names that are empty after trimming are excluded.
func (s LedgerSnapshot) productNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)

	add := func(name string) {
		if strings.TrimSpace(name) == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, r := range s.Inbound {
		add(r.ProductName)
	}
	for _, sale := range s.Outbound {
		add(sale.ProductName)
	}
	for _, ret := range s.Returns {
		add(ret.ProductName)
	}
	for _, order := range s.Wholesale {
		for _, item := range order.Items {
			add(item.ProductName)
		}
	}

	return names
}

// BuildInventorySummary derives current stock and valuation per product
// from the full ledger history.
//
// Stock is accepted inbound minus retail and wholesale outflows plus
// returns; it may go negative when a product was oversold, and negative
// values are reported as-is. Only ACCEPTED receipts contribute to stock
// and cost, using the accepted quantity rather than the ordered one.
func BuildInventorySummary(snap LedgerSnapshot) []InventoryRow {
	rows := make([]InventoryRow, 0)

	for _, name := range snap.productNames() {
		acceptedIn := decimal.Zero
		acceptedCost := decimal.Zero
		for _, r := range snap.Inbound {
			if r.ProductName != name || r.Status != ledger.ReceiptStatusAccepted {
				continue
			}
			acceptedIn = acceptedIn.Add(r.AcceptedQuantity)
			acceptedCost = acceptedCost.Add(r.AcceptedQuantity.Mul(r.Price))
		}

		outQty := decimal.Zero
		for _, sale := range snap.Outbound {
			if sale.ProductName == name {
				outQty = outQty.Add(sale.Quantity)
			}
		}

		wholesaleQty := decimal.Zero
		for _, order := range snap.Wholesale {
			for _, item := range order.Items {
				if item.ProductName == name {
					wholesaleQty = wholesaleQty.Add(item.Quantity)
				}
			}
		}

		returnQty := decimal.Zero
		for _, ret := range snap.Returns {
			if ret.ProductName == name {
				returnQty = returnQty.Add(ret.Quantity)
			}
		}

		currentStock := acceptedIn.Sub(outQty).Sub(wholesaleQty).Add(returnQty)

		avgUnitCost := decimal.Zero
		if acceptedIn.IsPositive() {
			avgUnitCost = acceptedCost.Div(acceptedIn)
		}

		rows = append(rows, InventoryRow{
			ProductName:   name,
			TotalInbound:  acceptedIn,
			TotalOutbound: outQty.Add(wholesaleQty),
			CurrentStock:  currentStock,
			AvgUnitCost:   avgUnitCost,
			TotalValue:    currentStock.Mul(avgUnitCost),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CurrentStock.GreaterThan(rows[j].CurrentStock)
	})

	return rows
}
