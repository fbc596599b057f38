package dispatchrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/dispatch"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
)

// fieldColumns maps patch field names to their columns. A patch carrying
// any other field name is rejected, not ignored.
var fieldColumns = map[string]string{
	dispatch.FieldTrailerNo:            "trailer_no",
	dispatch.FieldCarrier:              "carrier",
	dispatch.FieldDispatchDate:         "dispatch_date",
	dispatch.FieldScheduledDate:        "scheduled_date",
	dispatch.FieldTransportationStatus: "transportation_status",
	dispatch.FieldTransportationNotes:  "transportation_notes",
}

// GormDispatchRepository implements ports.DispatchRepository using GORM.
type GormDispatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	clock   func() time.Time
}

// aggregateTracker is the unit of work's tracking hook.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDispatchRepository creates a repository bound to a connection or
// transaction.
func NewGormDispatchRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatchRepository {
	return &GormDispatchRepository{
		db:      db,
		tracker: tracker,
		clock:   time.Now,
	}
}

// Get retrieves one order's transportation record.
func (r *GormDispatchRepository) Get(ctx context.Context, orderID kernel.UUID) (dispatch.Record, error) {
	if err := orderID.Validate(); err != nil {
		return dispatch.Record{}, err
	}

	var dto TransportRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dispatch.Record{}, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return dispatch.Record{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves every transportation record, ordered for stable board
// loads.
func (r *GormDispatchRepository) GetAll(ctx context.Context) ([]dispatch.Record, error) {
	var dtos []TransportRecordDTO
	err := r.db.WithContext(ctx).Order("order_id").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]dispatch.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		records = append(records, record)
	}
	return records, nil
}

// ApplyPatch writes the touched fields of one order's record. The first
// edit of an order creates its row; the order itself must already exist.
func (r *GormDispatchRepository) ApplyPatch(ctx context.Context, patch dispatch.Patch) error {
	if err := patch.OrderID.Validate(); err != nil {
		return err
	}
	if len(patch.Fields) == 0 {
		return errs.NewValueIsRequiredError("fields")
	}

	assignments := make(map[string]any, len(patch.Fields)+1)
	for field, value := range patch.Fields {
		column, ok := fieldColumns[field]
		if !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"fields", fmt.Errorf("unknown patchable field %q", field))
		}
		assignments[column] = value
	}
	assignments["updated_utc"] = r.clock().UTC()

	result := r.db.WithContext(ctx).
		Model(&TransportRecordDTO{}).
		Where("order_id = ?", patch.OrderID.Bytes()).
		Updates(assignments)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.createFromPatch(ctx, patch)
	}
	return nil
}

func (r *GormDispatchRepository) createFromPatch(ctx context.Context, patch dispatch.Patch) error {
	var orderCount int64
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", patch.OrderID.Bytes()).
		Count(&orderCount).Error
	if err != nil {
		return err
	}
	if orderCount == 0 {
		return errs.NewObjectNotFoundError("orderId", patch.OrderID.String())
	}

	record := dispatch.Record{OrderID: patch.OrderID}
	if err := applyFields(&record, patch.Fields); err != nil {
		return err
	}

	dto := fromDomain(record, r.clock().UTC())
	return r.db.WithContext(ctx).Create(&dto).Error
}

func applyFields(record *dispatch.Record, fields map[string]any) error {
	for field, value := range fields {
		var err error
		switch field {
		case dispatch.FieldTrailerNo:
			record.TrailerNo, err = stringField(field, value)
		case dispatch.FieldCarrier:
			record.Carrier, err = stringField(field, value)
		case dispatch.FieldDispatchDate:
			record.DispatchDate, err = timeField(field, value)
		case dispatch.FieldScheduledDate:
			record.ScheduledDate, err = timeField(field, value)
		case dispatch.FieldTransportationStatus:
			record.TransportationStatus, err = stringField(field, value)
		case dispatch.FieldTransportationNotes:
			record.TransportationNotes, err = stringField(field, value)
		default:
			err = errs.NewValueIsInvalidErrorWithCause(
				"fields", fmt.Errorf("unknown patchable field %q", field))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func stringField(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			field, fmt.Errorf("expected string, got %T", value))
	}
	return s, nil
}

func timeField(field string, value any) (*time.Time, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case *time.Time:
		return v, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			field, fmt.Errorf("expected timestamp, got %T", value))
	}
}
