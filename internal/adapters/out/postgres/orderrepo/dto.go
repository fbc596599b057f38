// Package orderrepo persists the order aggregate: the order row with its
// hold overlay columns and stage dates, plus the order line rows.
package orderrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate. The
// hold overlay is flattened onto the row; a non-null hold_type means an
// overlay is applied.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID *uuid.UUID `gorm:"type:uuid"`
	SiteID     *uuid.UUID `gorm:"type:uuid"`
	OrderDate  *time.Time
	Status     int `gorm:"index"`

	HoldType       *int
	HoldReasonCode string
	HoldOwnerRole  *int
	HoldNote       string

	ReadyForPickupDate     *time.Time
	PickupScheduledDate    *time.Time
	ReceivedDate           *time.Time
	ProductionCompleteDate *time.Time
	InvoiceReadyDate       *time.Time
	InvoicedDate           *time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database representation of one order line.
type OrderLineDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	LineNo           int
	ItemID           uuid.UUID `gorm:"type:uuid"`
	QuantityOrdered  int
	QuantityReceived int
}

// TableName overrides GORM's default naming.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: optionalBytes(aggregate.CustomerID()),
		SiteID:     optionalBytes(aggregate.SiteID()),
		OrderDate:  aggregate.OrderDate(),
		Status:     int(aggregate.LifecycleStatus()),
	}

	if hold := aggregate.Hold(); hold != nil {
		holdType := int(hold.Type())
		ownerRole := int(hold.OwnerRole())
		dto.HoldType = &holdType
		dto.HoldReasonCode = hold.ReasonCode()
		dto.HoldOwnerRole = &ownerRole
		dto.HoldNote = hold.Note()
	}

	stages := aggregate.StageDates()
	dto.ReadyForPickupDate = stages.ReadyForPickup
	dto.PickupScheduledDate = stages.PickupScheduled
	dto.ReceivedDate = stages.Received
	dto.ProductionCompleteDate = stages.ProductionComplete
	dto.InvoiceReadyDate = stages.InvoiceReady
	dto.InvoicedDate = stages.Invoiced

	for _, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, OrderLineDTO{
			ID:               line.ID().Bytes(),
			OrderID:          aggregate.ID().Bytes(),
			LineNo:           line.LineNo(),
			ItemID:           line.ItemID().Bytes(),
			QuantityOrdered:  line.QuantityOrdered(),
			QuantityReceived: line.QuantityReceived(),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := optionalUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	siteID, err := optionalUUID(dto.SiteID)
	if err != nil {
		return nil, err
	}

	var holdOverlay *order.HoldOverlay
	if dto.HoldType != nil {
		ownerRole := kernel.RoleOperator
		if dto.HoldOwnerRole != nil {
			ownerRole = kernel.Role(*dto.HoldOwnerRole)
		}
		overlay, holdErr := order.NewHoldOverlay(
			order.HoldType(*dto.HoldType), dto.HoldReasonCode, ownerRole, dto.HoldNote)
		if holdErr != nil {
			return nil, holdErr
		}
		holdOverlay = &overlay
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		siteID,
		dto.OrderDate,
		order.LifecycleStatus(dto.Status),
		holdOverlay,
		lines,
		order.StageDates{
			ReadyForPickup:     dto.ReadyForPickupDate,
			PickupScheduled:    dto.PickupScheduledDate,
			Received:           dto.ReceivedDate,
			ProductionComplete: dto.ProductionCompleteDate,
			InvoiceReady:       dto.InvoiceReadyDate,
			Invoiced:           dto.InvoicedDate,
		},
	)
}

func lineToDomain(dto OrderLineDTO) (*order.OrderLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}
	return order.NewOrderLine(id, dto.LineNo, itemID, dto.QuantityOrdered, dto.QuantityReceived)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
