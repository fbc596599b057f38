package commands

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput is one line of a new order as submitted by the caller.
type OrderLineInput struct {
	LineID          kernel.UUID
	LineNo          int
	ItemID          kernel.UUID
	QuantityOrdered int
}

// CreateOrderCommand registers a new sales order in Draft status with its
// customer, site and lines.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	siteID     kernel.UUID
	orderDate  time.Time
	lines      []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order-creation command. The
// order id is assigned by the caller so retries are idempotent.
func NewCreateOrderCommand(
	orderID, customerID, siteID kernel.UUID,
	orderDate time.Time,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		siteID.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.customerID = customerID
	cmd.siteID = siteID
	cmd.orderDate = orderDate
	cmd.lines = lines
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller-assigned order identifier.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// SiteID returns the customer site.
func (c CreateOrderCommand) SiteID() kernel.UUID { return c.siteID }

// OrderDate returns the order date.
func (c CreateOrderCommand) OrderDate() time.Time { return c.orderDate }

// Lines returns the submitted order lines.
func (c CreateOrderCommand) Lines() []OrderLineInput { return c.lines }
