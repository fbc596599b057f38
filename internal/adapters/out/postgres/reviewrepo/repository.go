package reviewrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ports.ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is the unit of work's tracking hook.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a repository bound to a connection or
// transaction.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review record.
func (r *GormReviewRepository) Add(ctx context.Context, record *review.ReviewRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(record)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves a decision or draft change on an existing record. Reviewer
// and DecidedUtc start out null, so every column is written explicitly.
func (r *GormReviewRepository) Update(ctx context.Context, record *review.ReviewRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(record)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&ReviewRecordDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a review record by id.
func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.ReviewRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reviewId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingForLine retrieves the open record for a line in the given
// phase.
func (r *GormReviewRepository) GetPendingForLine(
	ctx context.Context,
	lineID kernel.UUID,
	phase review.Phase,
) (*review.ReviewRecord, error) {
	if err := lineID.Validate(); err != nil {
		return nil, err
	}
	if err := phase.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "line_id = ? AND phase = ? AND decision = ?",
			lineID.Bytes(), int(phase), int(review.DecisionPending)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lineId", lineID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
