package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWholesaleOrder_AddItem(t *testing.T) {
	orderDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("adds items and keeps total current", func(t *testing.T) {
		order := NewWholesaleOrder("", "Northwind", "1 Trade St", orderDate, "")

		require.NoError(t, order.AddItem("Widget", decimal.NewFromInt(10), decimal.NewFromInt(3)))
		require.NoError(t, order.AddItem("Gadget", decimal.NewFromInt(5), decimal.NewFromInt(7)))

		assert.Equal(t, 2, order.ItemCount())
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(65)))
	})

	t.Run("rejects invalid lines", func(t *testing.T) {
		order := NewWholesaleOrder("", "Northwind", "", orderDate, "")

		assert.Error(t, order.AddItem("  ", decimal.NewFromInt(1), decimal.Zero))
		assert.Error(t, order.AddItem("Widget", decimal.Zero, decimal.Zero))
		assert.Error(t, order.AddItem("Widget", decimal.NewFromInt(1), decimal.NewFromInt(-2)))
		assert.Equal(t, 0, order.ItemCount())
	})
}

func TestWholesaleOrder_ReplaceItems(t *testing.T) {
	orderDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("swaps item list and recomputes total", func(t *testing.T) {
		order := NewWholesaleOrder("", "Northwind", "", orderDate, "")
		require.NoError(t, order.AddItem("Widget", decimal.NewFromInt(10), decimal.NewFromInt(3)))

		err := order.ReplaceItems([]WholesaleItem{
			{ProductName: "Gadget", Quantity: decimal.NewFromInt(4), Price: decimal.NewFromInt(25)},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, order.ItemCount())
		assert.Equal(t, "Gadget", order.Items[0].ProductName)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("requires at least one item", func(t *testing.T) {
		order := NewWholesaleOrder("", "Northwind", "", orderDate, "")
		err := order.ReplaceItems(nil)
		assert.Error(t, err)
	})

	t.Run("stamps the parent order ID on every item", func(t *testing.T) {
		order := NewWholesaleOrder("", "Northwind", "", orderDate, "")
		order.ID = 42

		require.NoError(t, order.ReplaceItems([]WholesaleItem{
			{ProductName: "Widget", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1)},
			{ProductName: "Gadget", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(2)},
		}))

		for _, item := range order.Items {
			assert.Equal(t, uint(42), item.OrderID)
		}
	})

	t.Run("rejects the whole batch on a single bad line", func(t *testing.T) {
		order := NewWholesaleOrder("", "Northwind", "", orderDate, "")
		require.NoError(t, order.AddItem("Widget", decimal.NewFromInt(10), decimal.NewFromInt(3)))

		err := order.ReplaceItems([]WholesaleItem{
			{ProductName: "Gadget", Quantity: decimal.NewFromInt(4), Price: decimal.NewFromInt(25)},
			{ProductName: "", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1)},
		})
		require.Error(t, err)

		// Original items untouched
		assert.Equal(t, 1, order.ItemCount())
		assert.Equal(t, "Widget", order.Items[0].ProductName)
	})
}
