package commands

import (
	"context"
)

// SaveTransportBoardCommandHandler writes the board's edited rows in one
// transaction: all patches land or none do.
type SaveTransportBoardCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewSaveTransportBoardCommandHandler creates a handler for board saves.
func NewSaveTransportBoardCommandHandler(uowFactory DispatchUoWFactory) SaveTransportBoardCommandHandler {
	return SaveTransportBoardCommandHandler{uowFactory: uowFactory}
}

// Handle applies every patch inside a single transaction.
func (h SaveTransportBoardCommandHandler) Handle(ctx context.Context, cmd SaveTransportBoardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dispatchRepo := uow.DispatchRepository()
	for _, patch := range cmd.Patches() {
		if err := dispatchRepo.ApplyPatch(ctx, patch); err != nil {
			return err
		}
	}
	return uow.Commit(ctx)
}
