package reasonrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHoldReasonRepository implements ports.HoldReasonRepository using GORM.
type GormHoldReasonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is the unit of work's tracking hook.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHoldReasonRepository creates a repository bound to a connection
// or transaction.
func NewGormHoldReasonRepository(db *gorm.DB, tracker aggregateTracker) *GormHoldReasonRepository {
	return &GormHoldReasonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reason code.
func (r *GormHoldReasonRepository) Add(ctx context.Context, code *order.HoldReasonCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := fromDomain(code)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(code.ID(), code)
	return nil
}

// Update saves changes to an existing reason code. Active is written
// explicitly so deactivation persists the false.
func (r *GormHoldReasonRepository) Update(ctx context.Context, code *order.HoldReasonCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := fromDomain(code)
	result := r.db.WithContext(ctx).
		Model(&HoldReasonCodeDTO{}).
		Where("id = ?", dto.ID).
		Select("description", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(code.ID(), code)
	return nil
}

// Get retrieves a reason code by id.
func (r *GormHoldReasonRepository) Get(ctx context.Context, id kernel.UUID) (*order.HoldReasonCode, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HoldReasonCodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reasonCodeId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTypeAndCode retrieves a reason code by its natural key.
func (r *GormHoldReasonRepository) GetByTypeAndCode(
	ctx context.Context,
	holdType order.HoldType,
	code string,
) (*order.HoldReasonCode, error) {
	if err := holdType.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto HoldReasonCodeDTO
	err := r.db.WithContext(ctx).
		First(&dto, "hold_type = ? AND code = ?", int(holdType), code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reasonCode", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a reason code from configuration.
func (r *GormHoldReasonRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&HoldReasonCodeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reasonCodeId", id.String())
	}
	return nil
}
