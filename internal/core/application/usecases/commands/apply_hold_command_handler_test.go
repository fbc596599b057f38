package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyHoldCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := newOrderInStatus(t, orderID, order.Received)

	reason, err := order.NewHoldReasonCode(kernel.NewUUID(), order.QualityHold, "QA-04", "failed inspection")
	require.NoError(t, err)

	cmd, err := commands.NewApplyHoldCommand(
		orderID, order.QualityHold, "QA-04", "rework pending", kernel.RoleSupervisor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reasonRepo := new(MockHoldReasonRepository)
	uow := new(MockOrderReasonUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HoldReasonRepository").Return(reasonRepo).Once(),
		reasonRepo.On("GetByTypeAndCode", ctx, order.QualityHold, "QA-04").Return(reason, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReasonUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyHoldCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, testOrder.IsOnHold())
	assert.Equal(t, order.QualityHold, testOrder.Hold().Type())
	assert.Equal(t, order.Received, testOrder.LifecycleStatus())
	orderRepo.AssertExpectations(t)
	reasonRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApplyHoldCommandHandler_Handle_ReplacesExistingOverlay(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := newOrderInStatus(t, orderID, order.Received)

	existing, err := order.NewHoldOverlay(order.CreditHold, "CR-01", kernel.RoleClerk, "")
	require.NoError(t, err)
	require.NoError(t, testOrder.ApplyHold(existing))

	reason, err := order.NewHoldReasonCode(kernel.NewUUID(), order.QualityHold, "QA-04", "failed inspection")
	require.NoError(t, err)

	cmd, err := commands.NewApplyHoldCommand(
		orderID, order.QualityHold, "QA-04", "", kernel.RoleSupervisor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reasonRepo := new(MockHoldReasonRepository)
	uow := new(MockOrderReasonUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HoldReasonRepository").Return(reasonRepo).Once(),
		reasonRepo.On("GetByTypeAndCode", ctx, order.QualityHold, "QA-04").Return(reason, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReasonUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyHoldCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.QualityHold, testOrder.Hold().Type())
	assert.Equal(t, "QA-04", testOrder.Hold().ReasonCode())
}

func TestApplyHoldCommandHandler_Handle_InactiveReason(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	reason, err := order.RestoreHoldReasonCode(
		kernel.NewUUID(), order.QualityHold, "QA-99", "retired code", false)
	require.NoError(t, err)

	cmd, err := commands.NewApplyHoldCommand(
		orderID, order.QualityHold, "QA-99", "", kernel.RoleSupervisor)
	require.NoError(t, err)

	reasonRepo := new(MockHoldReasonRepository)
	uow := new(MockOrderReasonUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HoldReasonRepository").Return(reasonRepo).Once(),
		reasonRepo.On("GetByTypeAndCode", ctx, order.QualityHold, "QA-99").Return(reason, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReasonUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyHoldCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReasonCodeInactive)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestApplyHoldCommandHandler_Handle_UnknownReasonCode(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewApplyHoldCommand(
		orderID, order.CreditHold, "NOPE", "", kernel.RoleClerk)
	require.NoError(t, err)

	reasonRepo := new(MockHoldReasonRepository)
	uow := new(MockOrderReasonUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HoldReasonRepository").Return(reasonRepo).Once(),
		reasonRepo.On("GetByTypeAndCode", ctx, order.CreditHold, "NOPE").
			Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderReasonUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyHoldCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
