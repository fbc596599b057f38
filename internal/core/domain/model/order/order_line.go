package order

import (
	"errors"
	"fmt"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var ErrOrderLineIsNotConstructed = errors.New(
	"OrderLine must be created via NewOrderLine constructor")

// OrderLine is one line of a sales order: an item, the quantity the
// customer ordered, and the quantity physically received for production.
// Route execution tracks progress against quantityReceived, not
// quantityOrdered, because short or over receipts are routine.
type OrderLine struct {
	id               kernel.UUID
	lineNo           int
	itemID           kernel.UUID
	quantityOrdered  int
	quantityReceived int

	isConstructed bool
}

// NewOrderLine creates a validated order line.
func NewOrderLine(id kernel.UUID, lineNo int, itemID kernel.UUID, quantityOrdered, quantityReceived int) (*OrderLine, error) {
	line := &OrderLine{isConstructed: true}

	if err := errors.Join(
		line.setID(id),
		line.setLineNo(lineNo),
		line.setItemID(itemID),
		line.setQuantityOrdered(quantityOrdered),
		line.setQuantityReceived(quantityReceived),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the line was created through NewOrderLine.
func (l *OrderLine) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrOrderLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *OrderLine) ID() kernel.UUID {
	return l.id
}

// LineNo returns the display position of the line within its order.
func (l *OrderLine) LineNo() int {
	return l.lineNo
}

// ItemID returns the catalog item on the line.
func (l *OrderLine) ItemID() kernel.UUID {
	return l.itemID
}

// QuantityOrdered returns the quantity the customer ordered.
func (l *OrderLine) QuantityOrdered() int {
	return l.quantityOrdered
}

// QuantityReceived returns the quantity received for production.
func (l *OrderLine) QuantityReceived() int {
	return l.quantityReceived
}

// RecordReceipt updates the received quantity during reconciliation.
func (l *OrderLine) RecordReceipt(quantityReceived int) error {
	return l.setQuantityReceived(quantityReceived)
}

func (l *OrderLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *OrderLine) setLineNo(lineNo int) error {
	if lineNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"lineNo", fmt.Errorf("%d is not greater than 0", lineNo))
	}
	l.lineNo = lineNo
	return nil
}

func (l *OrderLine) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *OrderLine) setQuantityOrdered(q int) error {
	if q <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityOrdered", fmt.Errorf("%d is not greater than 0", q))
	}
	l.quantityOrdered = q
	return nil
}

func (l *OrderLine) setQuantityReceived(q int) error {
	if q < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityReceived", fmt.Errorf("%d is negative", q))
	}
	l.quantityReceived = q
	return nil
}
