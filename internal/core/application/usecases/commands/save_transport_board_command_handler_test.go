package commands_test

import (
	"errors"
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/dispatch"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveTransportBoardCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	firstOrder := kernel.NewUUID()
	secondOrder := kernel.NewUUID()

	patches := []dispatch.Patch{
		{OrderID: firstOrder, Fields: map[string]any{dispatch.FieldTrailerNo: "TR-118"}},
		{OrderID: secondOrder, Fields: map[string]any{dispatch.FieldCarrier: "Averitt"}},
	}
	cmd, err := commands.NewSaveTransportBoardCommand(patches)
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		dispatchRepo.On("ApplyPatch", ctx, patches[0]).Return(nil).Once(),
		dispatchRepo.On("ApplyPatch", ctx, patches[1]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveTransportBoardCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	dispatchRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveTransportBoardCommandHandler_Handle_PatchErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	firstOrder := kernel.NewUUID()
	secondOrder := kernel.NewUUID()

	patches := []dispatch.Patch{
		{OrderID: firstOrder, Fields: map[string]any{dispatch.FieldTrailerNo: "TR-118"}},
		{OrderID: secondOrder, Fields: map[string]any{dispatch.FieldCarrier: "Averitt"}},
	}
	cmd, err := commands.NewSaveTransportBoardCommand(patches)
	require.NoError(t, err)

	dispatchRepo := new(MockDispatchRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DispatchRepository").Return(dispatchRepo).Once(),
		dispatchRepo.On("ApplyPatch", ctx, patches[0]).Return(nil).Once(),
		dispatchRepo.On("ApplyPatch", ctx, patches[1]).Return(errors.New("write conflict")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveTransportBoardCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "write conflict")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewSaveTransportBoardCommand_RejectsEmptyPatches(t *testing.T) {
	_, err := commands.NewSaveTransportBoardCommand(nil)
	require.Error(t, err)

	_, err = commands.NewSaveTransportBoardCommand([]dispatch.Patch{
		{OrderID: kernel.NewUUID(), Fields: map[string]any{}},
	})
	require.Error(t, err)
}
