package commands_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/route"

	"github.com/stretchr/testify/require"
)

const (
	testOperator   = kernel.EmpNo("10042")
	testSupervisor = kernel.EmpNo("20007")
)

func newOrderInStatus(t *testing.T, id kernel.UUID, status order.LifecycleStatus) *order.Order {
	t.Helper()

	customerID := kernel.NewUUID()
	siteID := kernel.NewUUID()
	orderDate := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)

	line, err := order.NewOrderLine(kernel.NewUUID(), 1, kernel.NewUUID(), 10, 10)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id, &customerID, &siteID, &orderDate, status, nil,
		[]*order.OrderLine{line}, order.StageDates{})
	require.NoError(t, err)
	return o
}

func newBatchRoute(t *testing.T, lineID kernel.UUID, scannedIn bool) (*route.RouteInstance, *route.Step) {
	t.Helper()

	r, err := route.NewRouteInstance(kernel.NewUUID(), lineID, 10, 10)
	require.NoError(t, err)

	step, err := route.NewStep(route.StepConfig{
		ID:              kernel.NewUUID(),
		RouteInstanceID: r.ID(),
		Sequence:        1,
		Code:            "ASSY-10",
		Name:            "Assembly",
		WorkCenterID:    kernel.NewUUID(),
		ProcessingMode:  route.BatchQuantity,
		TimeCaptureMode: route.TimeCaptureAutomated,
	})
	require.NoError(t, err)
	require.NoError(t, r.AddStep(step))

	if scannedIn {
		require.NoError(t, step.ScanIn(testOperator, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
	}
	return r, step
}

func newSingleUnitRoute(t *testing.T, lineID kernel.UUID, received int) (*route.RouteInstance, *route.Step) {
	t.Helper()

	r, err := route.NewRouteInstance(kernel.NewUUID(), lineID, received, received)
	require.NoError(t, err)

	step, err := route.NewStep(route.StepConfig{
		ID:                    kernel.NewUUID(),
		RouteInstanceID:       r.ID(),
		Sequence:              1,
		Code:                  "TEST-10",
		Name:                  "Unit test bench",
		WorkCenterID:          kernel.NewUUID(),
		ProcessingMode:        route.SingleUnit,
		TimeCaptureMode:       route.TimeCaptureAutomated,
		RequiresSerialCapture: true,
	})
	require.NoError(t, err)
	require.NoError(t, r.AddStep(step))
	return r, step
}
