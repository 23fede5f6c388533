package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/ledger"
)

func TestGranularity(t *testing.T) {
	assert.True(t, GranularityMonthly.IsValid())
	assert.True(t, GranularityYearly.IsValid())
	assert.False(t, Granularity("weekly").IsValid())
}

func TestBuildPeriodReport(t *testing.T) {
	t.Run("buckets by month, most recent first", func(t *testing.T) {
		snap := LedgerSnapshot{
			Outbound: []ledger.OutboundSale{
				sale(t, "Widget", 1, 10, date(2024, time.January, 5)),
				sale(t, "Widget", 2, 10, date(2024, time.January, 20)),
				sale(t, "Widget", 3, 10, date(2024, time.March, 1)),
			},
		}

		rows := BuildPeriodReport(snap, GranularityMonthly, ledger.DateRange{})
		require.Len(t, rows, 2)

		assert.Equal(t, "2024-03", rows[0].PeriodLabel)
		assert.True(t, rows[0].Revenue.Equal(d(30)))
		assert.Equal(t, "2024-01", rows[1].PeriodLabel)
		assert.True(t, rows[1].Revenue.Equal(d(30)))
	})

	t.Run("buckets by year", func(t *testing.T) {
		snap := LedgerSnapshot{
			Outbound: []ledger.OutboundSale{
				sale(t, "Widget", 1, 10, date(2023, time.June, 5)),
				sale(t, "Widget", 1, 20, date(2024, time.June, 5)),
			},
		}

		rows := BuildPeriodReport(snap, GranularityYearly, ledger.DateRange{})
		require.Len(t, rows, 2)
		assert.Equal(t, "2024", rows[0].PeriodLabel)
		assert.Equal(t, "2023", rows[1].PeriodLabel)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rows[0].PeriodDate)
	})

	t.Run("bucket totals roll up all four ledgers", func(t *testing.T) {
		jan := date(2024, time.January, 10)
		snap := LedgerSnapshot{
			Inbound: []ledger.InboundReceipt{
				acceptedReceipt(t, "Widget", 10, 10, 5, jan), // cost 50
			},
			Outbound: []ledger.OutboundSale{
				sale(t, "Widget", 5, 10, jan), // revenue 50
			},
			Wholesale: []ledger.WholesaleOrder{
				wholesaleOrder(t, "Northwind", jan,
					ledger.WholesaleItem{ProductName: "Widget", Quantity: d(2), Price: d(10)}), // revenue 20
			},
			Returns: []ledger.ReturnRecord{
				returned(t, "Widget", 1, 10, jan), // refund 10
			},
		}

		rows := BuildPeriodReport(snap, GranularityMonthly, ledger.DateRange{})
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, "2024-01", row.PeriodLabel)
		assert.True(t, row.Cost.Equal(d(50)))
		assert.True(t, row.Revenue.Equal(d(70)))
		assert.True(t, row.Refund.Equal(d(10)))
		assert.True(t, row.Profit.Equal(d(10)))
		require.Len(t, row.Details, 1)
		assert.Equal(t, "Widget", row.Details[0].ProductName)
	})

	t.Run("window restricts bucketed transactions", func(t *testing.T) {
		snap := LedgerSnapshot{
			Outbound: []ledger.OutboundSale{
				sale(t, "Widget", 1, 10, date(2023, time.December, 20)),
				sale(t, "Widget", 1, 10, date(2024, time.January, 20)),
			},
		}

		window := ledger.DateRange{Start: date(2024, time.January, 1)}
		rows := BuildPeriodReport(snap, GranularityMonthly, window)

		require.Len(t, rows, 1)
		assert.Equal(t, "2024-01", rows[0].PeriodLabel)
	})

	t.Run("empty snapshot yields no buckets", func(t *testing.T) {
		rows := BuildPeriodReport(LedgerSnapshot{}, GranularityMonthly, ledger.DateRange{})
		assert.Empty(t, rows)
	})
}
