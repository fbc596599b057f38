package dispatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/core/domain/model/dispatch"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
)

func newTestBoard(t *testing.T) (*dispatch.Board, []kernel.UUID) {
	t.Helper()

	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	records := make([]dispatch.Record, 0, len(ids))
	for _, id := range ids {
		records = append(records, dispatch.Record{
			OrderID: id,
			Carrier: "Initial Freight Co",
		})
	}
	return dispatch.NewBoard(records), ids
}

func Test_Board_PatchesContainOnlyTouchedFields(t *testing.T) {
	board, ids := newTestBoard(t)
	pickup := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, board.SetTrailerNo(ids[0], "TR-8841"))
	require.NoError(t, board.SetScheduledDate(ids[0], &pickup))
	require.NoError(t, board.SetTransportationNotes(ids[2], "liftgate required"))

	patches := board.SaveablePatches()
	require.Len(t, patches, 2, "only dirty orders appear")

	byOrder := make(map[string]dispatch.Patch, len(patches))
	for _, p := range patches {
		byOrder[p.OrderID.String()] = p
	}

	first := byOrder[ids[0].String()]
	assert.Equal(t, "TR-8841", first.Fields[dispatch.FieldTrailerNo])
	assert.Equal(t, &pickup, first.Fields[dispatch.FieldScheduledDate])
	assert.NotContains(t, first.Fields, dispatch.FieldCarrier, "untouched fields are omitted")
	assert.Len(t, first.Fields, 2)

	third := byOrder[ids[2].String()]
	assert.Equal(t, map[string]any{dispatch.FieldTransportationNotes: "liftgate required"}, third.Fields)
}

func Test_Board_MarkSavedClearsOnlySavedOrders(t *testing.T) {
	board, ids := newTestBoard(t)

	require.NoError(t, board.SetCarrier(ids[0], "Northline"))
	require.NoError(t, board.SetCarrier(ids[1], "Westhaul"))

	board.MarkSaved([]kernel.UUID{ids[0]})

	assert.False(t, board.IsDirty(ids[0]))
	assert.True(t, board.IsDirty(ids[1]), "failed saves stay dirty for retry")
	require.Len(t, board.SaveablePatches(), 1)
}

func Test_Board_ReloadDropsUnsavedEdits(t *testing.T) {
	board, ids := newTestBoard(t)
	require.NoError(t, board.SetTrailerNo(ids[0], "TR-0001"))

	board.Reload([]dispatch.Record{{OrderID: ids[0], TrailerNo: "TR-FRESH"}})

	assert.False(t, board.IsDirty(ids[0]))
	r, err := board.Record(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "TR-FRESH", r.TrailerNo)

	_, err = board.Record(ids[1])
	assert.Error(t, err, "records not in the reload are gone")
}

func Test_Board_CompleteLoadDiscardsStaleResult(t *testing.T) {
	board, ids := newTestBoard(t)

	stale := board.BeginLoad()
	current := board.BeginLoad()

	applied := board.CompleteLoad(stale, []dispatch.Record{{OrderID: ids[0], Carrier: "Stale Carrier"}})
	assert.False(t, applied, "superseded load must be discarded")
	r, err := board.Record(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Initial Freight Co", r.Carrier)

	applied = board.CompleteLoad(current, []dispatch.Record{{OrderID: ids[0], Carrier: "Fresh Carrier"}})
	require.True(t, applied)
	r, err = board.Record(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Fresh Carrier", r.Carrier)
}

func Test_Board_ReloadInvalidatesInFlightLoad(t *testing.T) {
	board, ids := newTestBoard(t)

	inFlight := board.BeginLoad()
	board.Reload([]dispatch.Record{{OrderID: ids[0], TrailerNo: "TR-FRESH"}})

	applied := board.CompleteLoad(inFlight, []dispatch.Record{{OrderID: ids[1]}})
	assert.False(t, applied)
	r, err := board.Record(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "TR-FRESH", r.TrailerNo)
}

func Test_Board_StatusAdvanceBlockedWhileDirty(t *testing.T) {
	board, ids := newTestBoard(t)

	err := board.ValidateStatusAdvance(ids[0], order.InboundPlanned, order.PickupScheduled)
	require.NoError(t, err)

	require.NoError(t, board.SetTrailerNo(ids[0], "TR-2207"))
	err = board.ValidateStatusAdvance(ids[0], order.InboundPlanned, order.PickupScheduled)
	assert.ErrorIs(t, err, dispatch.ErrOrderHasUnsavedEdits)

	board.MarkSaved([]kernel.UUID{ids[0]})
	assert.NoError(t, board.ValidateStatusAdvance(ids[0], order.InboundPlanned, order.PickupScheduled))
}

func Test_ValidateBoardTransition_OnlyTwoTransitionsOffered(t *testing.T) {
	assert.NoError(t, dispatch.ValidateBoardTransition(order.InboundPlanned, order.PickupScheduled))
	assert.NoError(t, dispatch.ValidateBoardTransition(order.ProductionComplete, order.InvoiceReady))

	assert.Error(t, dispatch.ValidateBoardTransition(order.Draft, order.InboundPlanned))
	assert.Error(t, dispatch.ValidateBoardTransition(order.Received, order.ProductionComplete))
	assert.Error(t, dispatch.ValidateBoardTransition(order.InvoiceReady, order.Invoiced))
}
