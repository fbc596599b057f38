package commands_test

import (
	"errors"
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordStepProgressCommandHandler_Handle_BatchProgress(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	workCenterID := kernel.NewUUID()
	testRoute, step := newBatchRoute(t, lineID, true)

	cmd, err := commands.NewRecordStepProgressCommand(
		lineID, step.ID(), workCenterID, 4, 1, nil, testOperator)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	queueCache := new(MockQueueCache)
	uow := new(MockRouteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByLineID", ctx, lineID).Return(testRoute, nil).Once(),
		routeRepo.On("Update", ctx, mock.AnythingOfType("*route.RouteInstance")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		queueCache.On("Invalidate", ctx, workCenterID).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordStepProgressCommandHandler(factory, queueCache)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 4, result.QuantityCompleted)
	assert.Equal(t, 1, result.QuantityScrapped)
	assert.False(t, result.ReadyToComplete)
	routeRepo.AssertExpectations(t)
	queueCache.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordStepProgressCommandHandler_Handle_SingleUnitSerial(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	workCenterID := kernel.NewUUID()
	testRoute, step := newSingleUnitRoute(t, lineID, 1)

	serial := &commands.SerialCaptureInput{
		SerialNo:  "SN-0001",
		Condition: route.ConditionGood,
	}
	cmd, err := commands.NewRecordStepProgressCommand(
		lineID, step.ID(), workCenterID, 0, 0, serial, testOperator)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	queueCache := new(MockQueueCache)
	uow := new(MockRouteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByLineID", ctx, lineID).Return(testRoute, nil).Once(),
		routeRepo.On("Update", ctx, mock.AnythingOfType("*route.RouteInstance")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		queueCache.On("Invalidate", ctx, workCenterID).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordStepProgressCommandHandler(factory, queueCache)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.QuantityCompleted)
	assert.True(t, result.ReadyToComplete)
	assert.Equal(t, route.StepInProgress, step.State()) // implicit scan-in
	require.Len(t, step.Serials(), 1)
	assert.Equal(t, "SN-0001", step.Serials()[0].SerialNo())
}

func TestRecordStepProgressCommandHandler_Handle_DuplicateSerialLeavesRouteUntouched(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	workCenterID := kernel.NewUUID()
	testRoute, step := newSingleUnitRoute(t, lineID, 2)

	serial := &commands.SerialCaptureInput{SerialNo: "SN-0001", Condition: route.ConditionGood}
	cmd, err := commands.NewRecordStepProgressCommand(
		lineID, step.ID(), workCenterID, 0, 0, serial, testOperator)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	queueCache := new(MockQueueCache)
	uow := new(MockRouteUoW)

	// First unit lands, the repeat of the same serial is rejected before
	// any rollup changes.
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("RouteRepository").Return(routeRepo).Twice()
	routeRepo.On("GetByLineID", ctx, lineID).Return(testRoute, nil).Twice()
	routeRepo.On("Update", ctx, mock.AnythingOfType("*route.RouteInstance")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	queueCache.On("Invalidate", ctx, workCenterID).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewRecordStepProgressCommandHandler(factory, queueCache)
	_, err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	cmd2, err := commands.NewRecordStepProgressCommand(
		lineID, step.ID(), workCenterID, 0, 0, serial, testOperator)
	require.NoError(t, err)
	_, err = handler.Handle(ctx, cmd2)

	require.Error(t, err)
	require.ErrorIs(t, err, route.ErrDuplicateSerial)
	assert.Equal(t, 1, testRoute.QuantityCompleted())
}

func TestRecordStepProgressCommandHandler_Handle_CacheFailureDoesNotFailCommand(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	workCenterID := kernel.NewUUID()
	testRoute, step := newBatchRoute(t, lineID, true)

	cmd, err := commands.NewRecordStepProgressCommand(
		lineID, step.ID(), workCenterID, 2, 0, nil, testOperator)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	queueCache := new(MockQueueCache)
	uow := new(MockRouteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByLineID", ctx, lineID).Return(testRoute, nil).Once(),
		routeRepo.On("Update", ctx, mock.AnythingOfType("*route.RouteInstance")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		queueCache.On("Invalidate", ctx, workCenterID).
			Return(errors.New("redis: connection refused")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordStepProgressCommandHandler(factory, queueCache)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err, "a stale queue self-heals on TTL, the commit stands")
	assert.Equal(t, 2, result.QuantityCompleted)
	queueCache.AssertExpectations(t)
}

func TestRecordStepProgressCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecordStepProgressCommand{} // not constructed properly

	factory := new(MockRouteUoWFactory)
	queueCache := new(MockQueueCache)
	handler := commands.NewRecordStepProgressCommandHandler(factory, queueCache)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecordStepProgressCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
