package order

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrHoldBlocksAdvance is returned by Advance while a hold overlay is
	// applied. Advancement is gated on both axes: lifecycle rules and the
	// hold overlay, and the overlay wins regardless of status.
	ErrHoldBlocksAdvance = errors.New("order is on hold; clear the hold before advancing")

	// ErrNoHoldApplied is returned by ClearHold when no overlay is applied.
	ErrNoHoldApplied = errors.New("order has no hold applied")
)

// Order is the sales-order aggregate root. It owns the lifecycle status,
// the orthogonal hold overlay, the order lines and the stage timestamps
// recorded as the order advances.
//
// Invariants:
//   - lifecycleStatus and legacy status never disagree (kept in sync on
//     every transition)
//   - the hold overlay is independent of lifecycleStatus and persists
//     until explicitly cleared
//   - line numbers are unique within the order
//   - Advance either fully succeeds or leaves the aggregate untouched
type Order struct {
	id              kernel.UUID
	customerID      *kernel.UUID
	siteID          *kernel.UUID
	orderDate       *time.Time
	lifecycleStatus LifecycleStatus
	legacyStatus    LegacyStatus
	holdOverlay     *HoldOverlay
	lines           []*OrderLine

	readyForPickupDate     *time.Time
	pickupScheduledDate    *time.Time
	receivedDate           *time.Time
	productionCompleteDate *time.Time
	invoiceReadyDate       *time.Time
	invoicedDate           *time.Time

	isConstructed bool
}

// NewOrder creates a new order in Draft status. Customer, site, order date
// and lines are attached afterwards through the mutator methods; they are
// required for advancement, not for creation.
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		lifecycleStatus: Draft,
		legacyStatus:    LegacyFromLifecycle(Draft),
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	customerID, siteID *kernel.UUID,
	orderDate *time.Time,
	status LifecycleStatus,
	holdOverlay *HoldOverlay,
	lines []*OrderLine,
	stageDates StageDates,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id)
	if err != nil {
		return nil, err
	}

	if customerID != nil {
		if err = customerID.Validate(); err != nil {
			return nil, err
		}
	}
	if siteID != nil {
		if err = siteID.Validate(); err != nil {
			return nil, err
		}
	}
	if holdOverlay != nil {
		if err = holdOverlay.Validate(); err != nil {
			return nil, err
		}
	}
	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}

	o.customerID = customerID
	o.siteID = siteID
	o.orderDate = orderDate
	o.lifecycleStatus = status
	o.legacyStatus = LegacyFromLifecycle(status)
	o.holdOverlay = holdOverlay
	o.lines = lines
	o.readyForPickupDate = stageDates.ReadyForPickup
	o.pickupScheduledDate = stageDates.PickupScheduled
	o.receivedDate = stageDates.Received
	o.productionCompleteDate = stageDates.ProductionComplete
	o.invoiceReadyDate = stageDates.InvoiceReady
	o.invoicedDate = stageDates.Invoiced
	return o, nil
}

// StageDates carries the per-stage timestamps through RestoreOrder.
type StageDates struct {
	ReadyForPickup     *time.Time
	PickupScheduled    *time.Time
	Received           *time.Time
	ProductionComplete *time.Time
	InvoiceReady       *time.Time
	Invoiced           *time.Time
}

// Validate ensures the order was created through its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer, nil while still unset on a draft.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// SiteID returns the site, nil while still unset on a draft.
func (o *Order) SiteID() *kernel.UUID {
	return o.siteID
}

// OrderDate returns the commercial order date.
func (o *Order) OrderDate() *time.Time {
	return o.orderDate
}

// LifecycleStatus returns the current lifecycle status.
func (o *Order) LifecycleStatus() LifecycleStatus {
	return o.lifecycleStatus
}

// LegacyStatus returns the synchronized legacy status for display and
// compatibility surfaces.
func (o *Order) LegacyStatus() LegacyStatus {
	return o.legacyStatus
}

// Hold returns the applied hold overlay, or nil when none is applied.
func (o *Order) Hold() *HoldOverlay {
	return o.holdOverlay
}

// IsOnHold reports whether a hold overlay is currently applied.
func (o *Order) IsOnHold() bool {
	return o.holdOverlay != nil
}

// Lines returns the order lines in line-number order.
func (o *Order) Lines() []*OrderLine {
	return o.lines
}

// Line finds a line by its identifier.
func (o *Order) Line(lineID kernel.UUID) (*OrderLine, error) {
	for _, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineId", lineID.String())
}

// StageDates returns the per-stage timestamps recorded so far.
func (o *Order) StageDates() StageDates {
	return StageDates{
		ReadyForPickup:     o.readyForPickupDate,
		PickupScheduled:    o.pickupScheduledDate,
		Received:           o.receivedDate,
		ProductionComplete: o.productionCompleteDate,
		InvoiceReady:       o.invoiceReadyDate,
		Invoiced:           o.invoicedDate,
	}
}

// AssignCustomer attaches the customer to the order.
func (o *Order) AssignCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = &customerID
	return nil
}

// AssignSite attaches the site to the order.
func (o *Order) AssignSite(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	o.siteID = &siteID
	return nil
}

// SetOrderDate records the commercial order date.
func (o *Order) SetOrderDate(orderDate time.Time) {
	o.orderDate = &orderDate
}

// AddLine appends a line to the order. Line numbers must be unique.
func (o *Order) AddLine(line *OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	for _, existing := range o.lines {
		if existing.LineNo() == line.LineNo() {
			return errs.NewValueIsInvalidErrorWithCause(
				"lineNo", errors.New("duplicate line number"))
		}
	}
	o.lines = append(o.lines, line)
	return nil
}

// ValidateAdvance checks every precondition of Advance without mutating
// the order: no hold overlay, required fields present, and target is the
// permitted successor. The returned error names the first unmet
// precondition.
func (o *Order) ValidateAdvance(target LifecycleStatus) error {
	if o.IsOnHold() {
		return ErrHoldBlocksAdvance
	}
	if o.customerID == nil {
		return errs.NewValueIsRequiredError("Customer")
	}
	if o.siteID == nil {
		return errs.NewValueIsRequiredError("Site")
	}
	if o.orderDate == nil {
		return errs.NewValueIsRequiredError("OrderDate")
	}
	if len(o.lines) == 0 {
		return errs.NewValueIsRequiredError("Lines")
	}
	return o.lifecycleStatus.ValidateAdvanceTo(target)
}

// Advance executes a lifecycle transition to target, recording the stage
// timestamp for the stage reached and keeping the legacy status in sync.
// All preconditions are checked before any field changes, so a failed
// advance leaves the order untouched.
func (o *Order) Advance(target LifecycleStatus, actingEmpNo kernel.EmpNo, now time.Time) error {
	if err := actingEmpNo.Validate(); err != nil {
		return err
	}
	if err := o.ValidateAdvance(target); err != nil {
		return err
	}

	newStatus, err := o.lifecycleStatus.AdvanceTo(target)
	if err != nil {
		return err
	}

	o.lifecycleStatus = newStatus
	o.legacyStatus = LegacyFromLifecycle(newStatus)
	o.recordStageDate(newStatus, now)
	return nil
}

func (o *Order) recordStageDate(status LifecycleStatus, now time.Time) {
	switch status {
	case InboundPlanned:
		o.readyForPickupDate = &now
	case PickupScheduled:
		o.pickupScheduledDate = &now
	case Received:
		o.receivedDate = &now
	case ProductionComplete:
		o.productionCompleteDate = &now
	case InvoiceReady:
		o.invoiceReadyDate = &now
	case Invoiced:
		o.invoicedDate = &now
	case Draft, LifecycleUnknown:
		// Draft has no reached-stage timestamp.
	}
}

// ApplyHold sets the hold overlay atomically. Applying over an existing
// overlay replaces it; the lifecycle status is never altered.
func (o *Order) ApplyHold(overlay HoldOverlay) error {
	if err := overlay.Validate(); err != nil {
		return err
	}
	o.holdOverlay = &overlay
	return nil
}

// ClearHold removes the applied overlay. It fails when no overlay is
// applied and never alters the lifecycle status. The closing note is the
// caller's to record in the audit trail; the aggregate only drops the
// overlay.
func (o *Order) ClearHold() error {
	if !o.IsOnHold() {
		return ErrNoHoldApplied
	}
	o.holdOverlay = nil
	return nil
}
