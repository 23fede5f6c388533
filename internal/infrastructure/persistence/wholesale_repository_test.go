package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/ledger"
	"github.com/wms/backend/internal/domain/shared"
)

func setupWholesaleTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ledger.WholesaleOrder{}, &ledger.WholesaleItem{})
	require.NoError(t, err)

	return db
}

func newStoredOrder(t *testing.T, repo *GormWholesaleRepository, customer string) *ledger.WholesaleOrder {
	t.Helper()
	order := ledger.NewWholesaleOrder("", customer, "1 Trade St",
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, order.ReplaceItems([]ledger.WholesaleItem{
		{ProductName: "Widget", Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(3)},
		{ProductName: "Gadget", Quantity: decimal.NewFromInt(5), Price: decimal.NewFromInt(7)},
	}))
	require.NoError(t, repo.Save(context.Background(), order))
	require.NotZero(t, order.ID)
	return order
}

func TestGormWholesaleRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("creates order with items", func(t *testing.T) {
		repo := NewGormWholesaleRepository(setupWholesaleTestDB(t))
		order := newStoredOrder(t, repo, "Northwind")

		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, "Northwind", found.Customer)
		assert.Len(t, found.Items, 2)
		assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(65)))
	})

	t.Run("update replaces the item list instead of appending", func(t *testing.T) {
		repo := NewGormWholesaleRepository(setupWholesaleTestDB(t))
		order := newStoredOrder(t, repo, "Northwind")

		require.NoError(t, order.ReplaceItems([]ledger.WholesaleItem{
			{ProductName: "Sprocket", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(50)},
		}))
		require.NoError(t, repo.Save(ctx, order))

		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "Sprocket", found.Items[0].ProductName)
		assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(100)))

		// No orphaned rows left behind
		var itemCount int64
		require.NoError(t, repo.db.Model(&ledger.WholesaleItem{}).Count(&itemCount).Error)
		assert.Equal(t, int64(1), itemCount)
	})
}

func TestGormWholesaleRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes order and cascades to items", func(t *testing.T) {
		repo := NewGormWholesaleRepository(setupWholesaleTestDB(t))
		order := newStoredOrder(t, repo, "Northwind")

		require.NoError(t, repo.Delete(ctx, order.ID))

		_, err := repo.FindByID(ctx, order.ID)
		assert.Equal(t, shared.ErrNotFound, err)

		var itemCount int64
		require.NoError(t, repo.db.Model(&ledger.WholesaleItem{}).Count(&itemCount).Error)
		assert.Zero(t, itemCount)
	})

	t.Run("returns not found for missing order", func(t *testing.T) {
		repo := NewGormWholesaleRepository(setupWholesaleTestDB(t))
		err := repo.Delete(ctx, 9999)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormWholesaleRepository_Distinct(t *testing.T) {
	ctx := context.Background()
	repo := NewGormWholesaleRepository(setupWholesaleTestDB(t))

	newStoredOrder(t, repo, "Northwind")
	newStoredOrder(t, repo, "Contoso")
	newStoredOrder(t, repo, "Northwind")

	customers, err := repo.DistinctCustomers(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Northwind", "Contoso"}, customers)

	products, err := repo.DistinctProductNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Widget", "Gadget"}, products)
}
