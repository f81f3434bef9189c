package order_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every lifecycle status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending,
			order.StatusProcessing,
			order.StatusShipped,
			order.StatusInTransit,
			order.StatusOutForDelivery,
			order.StatusDelivered,
			order.StatusFailedDelivery,
			order.StatusReturned,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown and zero values", func(t *testing.T) {
		require.Error(t, order.Status("").Validate())
		require.Error(t, order.Status("Delivered").Validate())
		require.Error(t, order.Status("teleported").Validate())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse wire form", func(t *testing.T) {
		s, err := order.ParseStatus("out_for_delivery")

		require.NoError(t, err)
		assert.Equal(t, order.StatusOutForDelivery, s)
	})

	t.Run("should fail for unknown value", func(t *testing.T) {
		_, err := order.ParseStatus("misplaced")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "misplaced")
	})
}

func TestStatus_Buckets(t *testing.T) {
	t.Run("should bucket pending stage", func(t *testing.T) {
		assert.True(t, order.StatusPending.InPendingStage())
		assert.True(t, order.StatusProcessing.InPendingStage())
		assert.False(t, order.StatusShipped.InPendingStage())
	})

	t.Run("should bucket transit stage", func(t *testing.T) {
		assert.True(t, order.StatusShipped.InTransitStage())
		assert.True(t, order.StatusInTransit.InTransitStage())
		assert.True(t, order.StatusOutForDelivery.InTransitStage())
		assert.False(t, order.StatusDelivered.InTransitStage())
		assert.False(t, order.StatusPending.InTransitStage())
	})

	t.Run("should mark terminal outcomes", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())
		assert.True(t, order.StatusFailedDelivery.IsTerminal())
		assert.True(t, order.StatusReturned.IsTerminal())
		assert.False(t, order.StatusOutForDelivery.IsTerminal())
	})
}

func TestParsePaymentStatus(t *testing.T) {
	t.Run("should parse every payment status", func(t *testing.T) {
		for _, raw := range []string{"unpaid", "partially_paid", "paid", "refunded"} {
			s, err := order.ParsePaymentStatus(raw)

			require.NoError(t, err)
			assert.Equal(t, raw, s.String())
		}
	})

	t.Run("should fail for unknown value", func(t *testing.T) {
		_, err := order.ParsePaymentStatus("store_credit")

		require.Error(t, err)
	})
}
