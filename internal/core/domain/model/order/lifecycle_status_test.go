package order_test

import (
	"testing"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleStatusValidate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []order.LifecycleStatus{
			order.Draft,
			order.InboundPlanned,
			order.PickupScheduled,
			order.Received,
			order.ProductionComplete,
			order.InvoiceReady,
			order.Invoiced,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		assert.ErrorIs(t, order.LifecycleUnknown.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, order.LifecycleStatus(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestLifecycleStatusAdvanceTo(t *testing.T) {
	t.Run("each status advances only to its successor", func(t *testing.T) {
		ladder := []order.LifecycleStatus{
			order.Draft,
			order.InboundPlanned,
			order.PickupScheduled,
			order.Received,
			order.ProductionComplete,
			order.InvoiceReady,
			order.Invoiced,
		}

		for i := 0; i < len(ladder)-1; i++ {
			next, err := ladder[i].AdvanceTo(ladder[i+1])
			require.NoError(t, err, ladder[i].String())
			assert.Equal(t, ladder[i+1], next)
		}
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		_, err := order.Draft.AdvanceTo(order.Received)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("moving backwards is rejected", func(t *testing.T) {
		_, err := order.Received.AdvanceTo(order.PickupScheduled)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invoiced is terminal", func(t *testing.T) {
		assert.True(t, order.Invoiced.IsTerminal())
		_, err := order.Invoiced.AdvanceTo(order.Draft)
		assert.Error(t, err)
	})
}

func TestLegacyStatusMapping(t *testing.T) {
	t.Run("mapping is a bijection over valid statuses", func(t *testing.T) {
		for _, s := range []order.LifecycleStatus{
			order.Draft,
			order.InboundPlanned,
			order.PickupScheduled,
			order.Received,
			order.ProductionComplete,
			order.InvoiceReady,
			order.Invoiced,
		} {
			legacy := order.LegacyFromLifecycle(s)
			require.NoError(t, legacy.Validate(), s.String())
			assert.Equal(t, s, order.LifecycleFromLegacy(legacy), s.String())
		}
	})

	t.Run("legacy display names are preserved", func(t *testing.T) {
		assert.Equal(t, "ReadyForPickup", order.LegacyFromLifecycle(order.InboundPlanned).String())
		assert.Equal(t, "ReceivedPendingReconciliation", order.LegacyFromLifecycle(order.Received).String())
		assert.Equal(t, "ReadyToShip", order.LegacyFromLifecycle(order.ProductionComplete).String())
		assert.Equal(t, "ReadyToInvoice", order.LegacyFromLifecycle(order.InvoiceReady).String())
		assert.Equal(t, "Closed", order.LegacyFromLifecycle(order.Invoiced).String())
	})

	t.Run("unknown maps to unknown both ways", func(t *testing.T) {
		assert.Equal(t, order.LegacyUnknown, order.LegacyFromLifecycle(order.LifecycleUnknown))
		assert.Equal(t, order.LifecycleUnknown, order.LifecycleFromLegacy(order.LegacyUnknown))
	})
}
