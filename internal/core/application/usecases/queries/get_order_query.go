package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery retrieves one order's header, hold overlay, stage dates
// and lines for the order detail screen.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order detail projection.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      *kernel.UUID
	SiteID          *kernel.UUID
	OrderDate       *time.Time
	LifecycleStatus string
	LegacyStatus    string

	Hold *OrderHoldResponse

	ReadyForPickupDate     *time.Time
	PickupScheduledDate    *time.Time
	ReceivedDate           *time.Time
	ProductionCompleteDate *time.Time
	InvoiceReadyDate       *time.Time
	InvoicedDate           *time.Time

	Lines []OrderLineResponse
}

// OrderHoldResponse is the applied hold overlay, present only while a
// hold is applied.
type OrderHoldResponse struct {
	HoldType   string
	ReasonCode string
	OwnerRole  string
	Note       string
}

// OrderLineResponse is one line of the order detail projection.
type OrderLineResponse struct {
	ID               kernel.UUID
	LineNo           int
	ItemID           kernel.UUID
	QuantityOrdered  int
	QuantityReceived int
}
