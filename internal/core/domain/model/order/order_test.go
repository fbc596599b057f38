package order_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, o.AssignCustomer(kernel.NewUUID()))
	require.NoError(t, o.AssignSite(kernel.NewUUID()))
	o.SetOrderDate(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	line, err := order.NewOrderLine(kernel.NewUUID(), 1, kernel.NewUUID(), 50, 50)
	require.NoError(t, err)
	require.NoError(t, o.AddLine(line))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts in draft with synced legacy status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		assert.Equal(t, order.Draft, o.LifecycleStatus())
		assert.Equal(t, order.LegacyDraft, o.LegacyStatus())
		assert.Nil(t, o.Hold())
		assert.Empty(t, o.Lines())
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderAdvance(t *testing.T) {
	t.Run("advances through the full ladder recording stage dates", func(t *testing.T) {
		o := readyOrder(t)
		now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)

		targets := []order.LifecycleStatus{
			order.InboundPlanned,
			order.PickupScheduled,
			order.Received,
			order.ProductionComplete,
			order.InvoiceReady,
			order.Invoiced,
		}
		for _, target := range targets {
			require.NoError(t, o.Advance(target, "E100", now), target.String())
			assert.Equal(t, target, o.LifecycleStatus())
			assert.Equal(t, order.LegacyFromLifecycle(target), o.LegacyStatus())
		}

		dates := o.StageDates()
		for _, d := range []*time.Time{
			dates.ReadyForPickup,
			dates.PickupScheduled,
			dates.Received,
			dates.ProductionComplete,
			dates.InvoiceReady,
			dates.Invoiced,
		} {
			require.NotNil(t, d)
			assert.Equal(t, now, *d)
		}
	})

	t.Run("missing site is rejected naming Site and status is unchanged", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.AssignCustomer(kernel.NewUUID()))
		o.SetOrderDate(time.Now().UTC())
		line, err := order.NewOrderLine(kernel.NewUUID(), 1, kernel.NewUUID(), 5, 5)
		require.NoError(t, err)
		require.NoError(t, o.AddLine(line))

		err = o.Advance(order.InboundPlanned, "E100", time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "Site")
		assert.Equal(t, order.Draft, o.LifecycleStatus())
	})

	t.Run("missing customer, date and lines are each named", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		err = o.Advance(order.InboundPlanned, "E100", time.Now().UTC())
		assert.Contains(t, err.Error(), "Customer")

		require.NoError(t, o.AssignCustomer(kernel.NewUUID()))
		require.NoError(t, o.AssignSite(kernel.NewUUID()))
		err = o.Advance(order.InboundPlanned, "E100", time.Now().UTC())
		assert.Contains(t, err.Error(), "OrderDate")

		o.SetOrderDate(time.Now().UTC())
		err = o.Advance(order.InboundPlanned, "E100", time.Now().UTC())
		assert.Contains(t, err.Error(), "Lines")
	})

	t.Run("hold blocks advancement regardless of status", func(t *testing.T) {
		o := readyOrder(t)
		overlay, err := order.NewHoldOverlay(order.CreditHold, "CR-01", kernel.RoleClerk, "")
		require.NoError(t, err)
		require.NoError(t, o.ApplyHold(overlay))

		err = o.Advance(order.InboundPlanned, "E100", time.Now().UTC())
		require.ErrorIs(t, err, order.ErrHoldBlocksAdvance)
		assert.Equal(t, order.Draft, o.LifecycleStatus())

		require.NoError(t, o.ClearHold())
		assert.NoError(t, o.Advance(order.InboundPlanned, "E100", time.Now().UTC()))
	})

	t.Run("empty acting employee is rejected", func(t *testing.T) {
		o := readyOrder(t)
		assert.ErrorIs(t, o.Advance(order.InboundPlanned, "", time.Now().UTC()), errs.ErrValueIsRequired)
	})
}

func TestOrderHoldOverlay(t *testing.T) {
	t.Run("second apply replaces the first overlay entirely", func(t *testing.T) {
		o := readyOrder(t)

		credit, err := order.NewHoldOverlay(order.CreditHold, "X", kernel.RoleClerk, "")
		require.NoError(t, err)
		quality, err := order.NewHoldOverlay(order.QualityHold, "Y", kernel.RoleSupervisor, "rework")
		require.NoError(t, err)

		require.NoError(t, o.ApplyHold(credit))
		require.NoError(t, o.ApplyHold(quality))

		hold := o.Hold()
		require.NotNil(t, hold)
		assert.Equal(t, order.QualityHold, hold.Type())
		assert.Equal(t, "Y", hold.ReasonCode())
		assert.Equal(t, kernel.RoleSupervisor, hold.OwnerRole())
	})

	t.Run("clear after any apply leaves no overlay", func(t *testing.T) {
		o := readyOrder(t)
		overlay, err := order.NewHoldOverlay(order.CustomerHold, "CU-02", kernel.RoleClerk, "")
		require.NoError(t, err)

		require.NoError(t, o.ApplyHold(overlay))
		require.NoError(t, o.ClearHold())
		assert.Nil(t, o.Hold())
		assert.False(t, o.IsOnHold())
	})

	t.Run("clearing without a hold fails", func(t *testing.T) {
		o := readyOrder(t)
		assert.ErrorIs(t, o.ClearHold(), order.ErrNoHoldApplied)
	})

	t.Run("apply does not alter lifecycle status", func(t *testing.T) {
		o := readyOrder(t)
		require.NoError(t, o.Advance(order.InboundPlanned, "E100", time.Now().UTC()))

		overlay, err := order.NewHoldOverlay(order.CreditHold, "CR-01", kernel.RoleClerk, "")
		require.NoError(t, err)
		require.NoError(t, o.ApplyHold(overlay))
		assert.Equal(t, order.InboundPlanned, o.LifecycleStatus())
	})
}

func TestOrderLines(t *testing.T) {
	t.Run("duplicate line numbers are rejected", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		first, err := order.NewOrderLine(kernel.NewUUID(), 1, kernel.NewUUID(), 5, 0)
		require.NoError(t, err)
		second, err := order.NewOrderLine(kernel.NewUUID(), 1, kernel.NewUUID(), 3, 0)
		require.NoError(t, err)

		require.NoError(t, o.AddLine(first))
		assert.ErrorIs(t, o.AddLine(second), errs.ErrValueIsInvalid)
	})

	t.Run("line lookup by id", func(t *testing.T) {
		o := readyOrder(t)
		lineID := o.Lines()[0].ID()

		line, err := o.Line(lineID)
		require.NoError(t, err)
		assert.True(t, line.ID().IsEqual(lineID))

		_, err = o.Line(kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestHoldReasonCode(t *testing.T) {
	t.Run("constructor validates key fields", func(t *testing.T) {
		rc, err := order.NewHoldReasonCode(kernel.NewUUID(), order.CreditHold, "CR-01", "credit limit exceeded")
		require.NoError(t, err)
		assert.True(t, rc.IsActive())

		_, err = order.NewHoldReasonCode(kernel.NewUUID(), order.CreditHold, "", "no code")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewHoldReasonCode(kernel.NewUUID(), order.HoldTypeUnknown, "CR-01", "bad type")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("deactivate retires the code without losing identity", func(t *testing.T) {
		rc, err := order.NewHoldReasonCode(kernel.NewUUID(), order.QualityHold, "Q-04", "failed inspection")
		require.NoError(t, err)

		rc.Deactivate()
		assert.False(t, rc.IsActive())
		assert.Equal(t, "Q-04", rc.Code())
	})
}
