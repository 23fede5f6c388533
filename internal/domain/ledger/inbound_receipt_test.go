package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/shared"
)

func newTestReceipt(t *testing.T, qty, price int64) *InboundReceipt {
	t.Helper()
	receipt, err := NewInboundReceipt("", "Widget", "Acme Supply",
		decimal.NewFromInt(qty), decimal.NewFromInt(price),
		time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return receipt
}

func TestNewInboundReceipt(t *testing.T) {
	t.Run("creates pending receipt with generated order number", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)

		assert.Equal(t, ReceiptStatusPending, receipt.Status)
		assert.True(t, receipt.IsPending())
		assert.True(t, receipt.AcceptedQuantity.IsZero())
		assert.True(t, receipt.RejectedQuantity.IsZero())
		assert.Nil(t, receipt.CheckDate)
		assert.Equal(t, "RK20240115093000", receipt.OrderNo)
	})

	t.Run("keeps caller-supplied order number", func(t *testing.T) {
		receipt, err := NewInboundReceipt("RK-CUSTOM-1", "Widget", "",
			decimal.NewFromInt(1), decimal.Zero, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "RK-CUSTOM-1", receipt.OrderNo)
	})

	t.Run("rejects blank product name", func(t *testing.T) {
		_, err := NewInboundReceipt("", "   ", "", decimal.NewFromInt(1), decimal.Zero, time.Now())
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRODUCT_NAME", domainErr.Code)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewInboundReceipt("", "Widget", "", decimal.Zero, decimal.Zero, time.Now())
		assert.Error(t, err)

		_, err = NewInboundReceipt("", "Widget", "", decimal.NewFromInt(-3), decimal.Zero, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewInboundReceipt("", "Widget", "", decimal.NewFromInt(1), decimal.NewFromInt(-1), time.Now())
		assert.Error(t, err)
	})
}

func TestInboundReceipt_RecordAcceptance(t *testing.T) {
	checkedAt := time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC)

	t.Run("partial acceptance splits quantity", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)

		err := receipt.RecordAcceptance(decimal.NewFromInt(80), checkedAt, false)
		require.NoError(t, err)

		assert.Equal(t, ReceiptStatusAccepted, receipt.Status)
		assert.True(t, receipt.AcceptedQuantity.Equal(decimal.NewFromInt(80)))
		assert.True(t, receipt.RejectedQuantity.Equal(decimal.NewFromInt(20)))
		require.NotNil(t, receipt.CheckDate)
		assert.Equal(t, checkedAt, *receipt.CheckDate)
	})

	t.Run("zero accepted means rejected", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)

		err := receipt.RecordAcceptance(decimal.Zero, checkedAt, false)
		require.NoError(t, err)

		assert.Equal(t, ReceiptStatusRejected, receipt.Status)
		assert.True(t, receipt.AcceptedQuantity.IsZero())
		assert.True(t, receipt.RejectedQuantity.Equal(decimal.NewFromInt(100)))
	})

	t.Run("clamps accepted quantity above ordered", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)

		err := receipt.RecordAcceptance(decimal.NewFromInt(150), checkedAt, false)
		require.NoError(t, err)

		assert.True(t, receipt.AcceptedQuantity.Equal(decimal.NewFromInt(100)))
		assert.True(t, receipt.RejectedQuantity.IsZero())
		assert.Equal(t, ReceiptStatusAccepted, receipt.Status)
	})

	t.Run("clamps negative accepted quantity to zero", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)

		err := receipt.RecordAcceptance(decimal.NewFromInt(-10), checkedAt, false)
		require.NoError(t, err)

		assert.True(t, receipt.AcceptedQuantity.IsZero())
		assert.Equal(t, ReceiptStatusRejected, receipt.Status)
	})

	t.Run("refuses re-inspection without force", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)
		require.NoError(t, receipt.RecordAcceptance(decimal.NewFromInt(80), checkedAt, false))

		err := receipt.RecordAcceptance(decimal.NewFromInt(90), checkedAt.Add(time.Hour), false)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCEPTANCE_ALREADY_RECORDED", domainErr.Code)

		// Unchanged
		assert.True(t, receipt.AcceptedQuantity.Equal(decimal.NewFromInt(80)))
	})

	t.Run("force allows re-inspection", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)
		require.NoError(t, receipt.RecordAcceptance(decimal.NewFromInt(80), checkedAt, false))

		recheckedAt := checkedAt.Add(time.Hour)
		err := receipt.RecordAcceptance(decimal.NewFromInt(90), recheckedAt, true)
		require.NoError(t, err)

		assert.True(t, receipt.AcceptedQuantity.Equal(decimal.NewFromInt(90)))
		assert.True(t, receipt.RejectedQuantity.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, recheckedAt, *receipt.CheckDate)
	})

	t.Run("accepted plus rejected always equals ordered quantity", func(t *testing.T) {
		for _, accepted := range []int64{-5, 0, 1, 50, 100, 200} {
			receipt := newTestReceipt(t, 100, 5)
			require.NoError(t, receipt.RecordAcceptance(decimal.NewFromInt(accepted), checkedAt, false))
			sum := receipt.AcceptedQuantity.Add(receipt.RejectedQuantity)
			assert.True(t, sum.Equal(receipt.Quantity), "accepted=%d", accepted)
		}
	})
}

func TestInboundReceipt_AcceptedCost(t *testing.T) {
	t.Run("pending receipt contributes no cost", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)
		assert.True(t, receipt.AcceptedCost().IsZero())
	})

	t.Run("rejected receipt contributes no cost", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)
		require.NoError(t, receipt.RecordAcceptance(decimal.Zero, time.Now(), false))
		assert.True(t, receipt.AcceptedCost().IsZero())
	})

	t.Run("accepted receipt costs accepted quantity times price", func(t *testing.T) {
		receipt := newTestReceipt(t, 100, 5)
		require.NoError(t, receipt.RecordAcceptance(decimal.NewFromInt(80), time.Now(), false))
		assert.True(t, receipt.AcceptedCost().Equal(decimal.NewFromInt(400)))
	})
}

func TestReceiptStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		assert.True(t, ReceiptStatusPending.IsValid())
		assert.True(t, ReceiptStatusAccepted.IsValid())
		assert.True(t, ReceiptStatusRejected.IsValid())
		assert.False(t, ReceiptStatus("SHIPPED").IsValid())
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, ReceiptStatusPending.IsTerminal())
		assert.True(t, ReceiptStatusAccepted.IsTerminal())
		assert.True(t, ReceiptStatusRejected.IsTerminal())
	})
}

func TestGenerateOrderNo(t *testing.T) {
	at := time.Date(2024, 3, 2, 8, 5, 9, 0, time.UTC)

	assert.Equal(t, "CK20240302080509", GenerateOrderNo(PrefixOutbound, at))
	assert.Equal(t, "TH20240302080509", GenerateOrderNo(PrefixReturn, at))

	wholesale := GenerateWholesaleOrderNo(at)
	assert.True(t, strings.HasPrefix(wholesale, "WS20240302"))
	assert.Len(t, wholesale, len("WS20240302")+4)
}
