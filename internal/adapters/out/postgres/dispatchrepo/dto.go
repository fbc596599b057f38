// Package dispatchrepo persists the transportation records behind the
// dispatch board. The table is keyed by order id: one transportation row
// per order, created when the order is released to shipping.
package dispatchrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/dispatch"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TransportRecordDTO is the database representation of one order's
// transportation data.
type TransportRecordDTO struct {
	OrderID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrailerNo            string
	Carrier              string
	DispatchDate         *time.Time
	ScheduledDate        *time.Time
	TransportationStatus string
	TransportationNotes  string
	UpdatedUtc           time.Time
}

// TableName overrides GORM's default naming.
func (TransportRecordDTO) TableName() string {
	return "transport_records"
}

func fromDomain(record dispatch.Record, updatedUtc time.Time) TransportRecordDTO {
	return TransportRecordDTO{
		OrderID:              record.OrderID.Bytes(),
		TrailerNo:            record.TrailerNo,
		Carrier:              record.Carrier,
		DispatchDate:         record.DispatchDate,
		ScheduledDate:        record.ScheduledDate,
		TransportationStatus: record.TransportationStatus,
		TransportationNotes:  record.TransportationNotes,
		UpdatedUtc:           updatedUtc,
	}
}

func toDomain(dto TransportRecordDTO) (dispatch.Record, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return dispatch.Record{}, err
	}

	return dispatch.Record{
		OrderID:              orderID,
		TrailerNo:            dto.TrailerNo,
		Carrier:              dto.Carrier,
		DispatchDate:         dto.DispatchDate,
		ScheduledDate:        dto.ScheduledDate,
		TransportationStatus: dto.TransportationStatus,
		TransportationNotes:  dto.TransportationNotes,
	}, nil
}
