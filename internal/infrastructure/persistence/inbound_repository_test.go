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

func setupInboundTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ledger.InboundReceipt{})
	require.NoError(t, err)

	return db
}

func storedReceipt(t *testing.T, repo *GormInboundRepository, product, supplier string, day int) *ledger.InboundReceipt {
	t.Helper()
	at := time.Date(2024, 1, day, 10, 0, 0, 0, time.UTC)
	receipt, err := ledger.NewInboundReceipt("", product, supplier,
		decimal.NewFromInt(10), decimal.NewFromInt(5), at)
	require.NoError(t, err)
	// Generated order numbers are second-resolution; make them unique
	// across fixture rows created in the same instant.
	receipt.OrderNo = receipt.OrderNo + "-" + product
	require.NoError(t, repo.Save(context.Background(), receipt))
	return receipt
}

func TestGormInboundRepository_CRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("save assigns ID and find returns the row", func(t *testing.T) {
		repo := NewGormInboundRepository(setupInboundTestDB(t))
		receipt := storedReceipt(t, repo, "Widget", "Acme", 10)
		require.NotZero(t, receipt.ID)

		found, err := repo.FindByID(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Equal(t, "Widget", found.ProductName)
		assert.Equal(t, ledger.ReceiptStatusPending, found.Status)
	})

	t.Run("save with existing ID updates in place", func(t *testing.T) {
		repo := NewGormInboundRepository(setupInboundTestDB(t))
		receipt := storedReceipt(t, repo, "Widget", "Acme", 10)

		require.NoError(t, receipt.RecordAcceptance(decimal.NewFromInt(8), time.Now(), false))
		require.NoError(t, repo.Save(ctx, receipt))

		found, err := repo.FindByID(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Equal(t, ledger.ReceiptStatusAccepted, found.Status)
		assert.True(t, found.AcceptedQuantity.Equal(decimal.NewFromInt(8)))
		assert.True(t, found.RejectedQuantity.Equal(decimal.NewFromInt(2)))
		assert.NotNil(t, found.CheckDate)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("find all orders newest first", func(t *testing.T) {
		repo := NewGormInboundRepository(setupInboundTestDB(t))
		storedReceipt(t, repo, "Old", "Acme", 1)
		storedReceipt(t, repo, "New", "Acme", 20)

		receipts, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, receipts, 2)
		assert.Equal(t, "New", receipts[0].ProductName)
		assert.Equal(t, "Old", receipts[1].ProductName)
	})

	t.Run("find missing returns not found", func(t *testing.T) {
		repo := NewGormInboundRepository(setupInboundTestDB(t))
		_, err := repo.FindByID(ctx, 42)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		repo := NewGormInboundRepository(setupInboundTestDB(t))
		receipt := storedReceipt(t, repo, "Widget", "Acme", 10)

		require.NoError(t, repo.Delete(ctx, receipt.ID))
		_, err := repo.FindByID(ctx, receipt.ID)
		assert.Equal(t, shared.ErrNotFound, err)

		assert.Equal(t, shared.ErrNotFound, repo.Delete(ctx, receipt.ID))
	})
}

func TestGormInboundRepository_Distinct(t *testing.T) {
	ctx := context.Background()
	repo := NewGormInboundRepository(setupInboundTestDB(t))

	storedReceipt(t, repo, "Widget", "Acme", 1)
	storedReceipt(t, repo, "Widget2", "Acme", 2)
	storedReceipt(t, repo, "Gadget", "", 3)

	products, err := repo.DistinctProductNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Widget", "Widget2", "Gadget"}, products)

	suppliers, err := repo.DistinctSuppliers(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Acme"}, suppliers)
}
