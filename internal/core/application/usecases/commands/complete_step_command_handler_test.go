package commands_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteStepCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	workCenterID := kernel.NewUUID()
	testRoute, step := newBatchRoute(t, lineID, true)
	require.NoError(t, testRoute.RecordBatchProgress(step.ID(), 10, 0, testOperator))

	cmd, err := commands.NewCompleteStepCommand(
		lineID, step.ID(), workCenterID, testOperator, "all good", nil)
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

	handler := commands.NewCompleteStepCommandHandler(factory, queueCache)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.RouteComplete)
	assert.Nil(t, result.NextStepID)
	assert.Equal(t, route.StepCompleted, step.State())
}

func TestCompleteStepCommandHandler_Handle_ReturnsNextPendingStep(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	workCenterID := kernel.NewUUID()
	testRoute, first := newBatchRoute(t, lineID, true)

	second, err := route.NewStep(route.StepConfig{
		ID:              kernel.NewUUID(),
		RouteInstanceID: testRoute.ID(),
		Sequence:        2,
		Code:            "PACK-20",
		Name:            "Packing",
		WorkCenterID:    kernel.NewUUID(),
		ProcessingMode:  route.BatchQuantity,
		TimeCaptureMode: route.TimeCaptureAutomated,
	})
	require.NoError(t, err)
	require.NoError(t, testRoute.AddStep(second))
	require.NoError(t, testRoute.RecordBatchProgress(first.ID(), 10, 0, testOperator))

	cmd, err := commands.NewCompleteStepCommand(
		lineID, first.ID(), workCenterID, testOperator, "", nil)
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

	handler := commands.NewCompleteStepCommandHandler(factory, queueCache)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.RouteComplete)
	require.NotNil(t, result.NextStepID)
	assert.True(t, second.ID().IsEqual(*result.NextStepID))
	assert.Equal(t, 2, result.NextStepSequence)
}

func TestCompleteStepCommandHandler_Handle_GateFailureLeavesStepOpen(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	workCenterID := kernel.NewUUID()
	testRoute, step := newBatchRoute(t, lineID, true)
	require.NoError(t, testRoute.RecordBatchProgress(step.ID(), 6, 0, testOperator))

	cmd, err := commands.NewCompleteStepCommand(
		lineID, step.ID(), workCenterID, testOperator, "", nil)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	queueCache := new(MockQueueCache)
	uow := new(MockRouteUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("GetByLineID", ctx, lineID).Return(testRoute, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteStepCommandHandler(factory, queueCache)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorContains(t, err, string(route.RequirementQuantity))
	assert.Equal(t, route.StepInProgress, step.State())
	routeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	queueCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestCompleteStepCommandHandler_Handle_ManualDuration(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	workCenterID := kernel.NewUUID()

	testRoute, err := route.NewRouteInstance(kernel.NewUUID(), lineID, 5, 5)
	require.NoError(t, err)
	step, err := route.NewStep(route.StepConfig{
		ID:              kernel.NewUUID(),
		RouteInstanceID: testRoute.ID(),
		Sequence:        1,
		Code:            "WELD-10",
		Name:            "Welding",
		WorkCenterID:    kernel.NewUUID(),
		ProcessingMode:  route.BatchQuantity,
		TimeCaptureMode: route.TimeCaptureManual,
	})
	require.NoError(t, err)
	require.NoError(t, testRoute.AddStep(step))
	require.NoError(t, step.ScanIn(testOperator, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, testRoute.RecordBatchProgress(step.ID(), 5, 0, testOperator))

	minutes := 42
	cmd, err := commands.NewCompleteStepCommand(
		lineID, step.ID(), workCenterID, testOperator, "", &minutes)
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

	handler := commands.NewCompleteStepCommandHandler(factory, queueCache)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.RouteComplete)
	require.NotNil(t, step.ManualDurationMinutes())
	assert.Equal(t, 42, *step.ManualDurationMinutes())
}
