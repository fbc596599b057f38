package commands

import (
	"context"

	"shopfloor/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a new Draft order with its customer,
// site and lines inside one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle creates the order aggregate and stores it. The order starts in
// Draft and carries no hold overlay.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID())
	if err != nil {
		return err
	}
	if err = aggregate.AssignCustomer(cmd.CustomerID()); err != nil {
		return err
	}
	if err = aggregate.AssignSite(cmd.SiteID()); err != nil {
		return err
	}
	aggregate.SetOrderDate(cmd.OrderDate())
	for _, input := range cmd.Lines() {
		// A new line has received nothing yet; receipts reconcile later.
		line, lineErr := order.NewOrderLine(input.LineID, input.LineNo, input.ItemID, input.QuantityOrdered, 0)
		if lineErr != nil {
			return lineErr
		}
		if lineErr = aggregate.AddLine(line); lineErr != nil {
			return lineErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
