package routerepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is the unit of work's tracking hook.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a repository bound to a connection or
// transaction.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route instance with its steps and ledgers.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.RouteInstance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to a route instance. The steps and their ledgers
// are replaced wholesale: progress, ledger edits and review adjustments
// all mutate the step set, and replacing it keeps every write path on one
// code path.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.RouteInstance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RouteInstanceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "Steps").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceSteps(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route instance by id.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.RouteInstance, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByLineID retrieves the route instance producing an order line.
func (r *GormRouteRepository) GetByLineID(ctx context.Context, lineID kernel.UUID) (*route.RouteInstance, error) {
	if err := lineID.Validate(); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "line_id = ?", lineID.Bytes(), lineID.String())
}

// GetAllByOrderID retrieves every route instance across an order's lines.
func (r *GormRouteRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*route.RouteInstance, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	lineIDs := r.db.Table("order_lines").Select("id").Where("order_id = ?", orderID.Bytes())

	var dtos []RouteInstanceDTO
	err := r.withLedgers(ctx).Find(&dtos, "line_id IN (?)", lineIDs).Error
	if err != nil {
		return nil, err
	}

	routes := make([]*route.RouteInstance, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		routes = append(routes, aggregate)
	}
	return routes, nil
}

func (r *GormRouteRepository) getOne(
	ctx context.Context,
	condition string,
	value any,
	display string,
) (*route.RouteInstance, error) {
	var dto RouteInstanceDTO
	if err := r.withLedgers(ctx).First(&dto, condition, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("routeInstance", display)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormRouteRepository) withLedgers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence")
		}).
		Preload("Steps.Usage").
		Preload("Steps.Scrap").
		Preload("Steps.Serials").
		Preload("Steps.Checklist")
}

func (r *GormRouteRepository) replaceSteps(ctx context.Context, dto RouteInstanceDTO) error {
	stepIDs := r.db.Table("route_steps").Select("id").Where("route_instance_id = ?", dto.ID)

	for _, ledger := range []any{
		&UsageEntryDTO{}, &ScrapEntryDTO{}, &SerialEntryDTO{}, &ChecklistEntryDTO{},
	} {
		if err := r.db.WithContext(ctx).Where("step_id IN (?)", stepIDs).Delete(ledger).Error; err != nil {
			return err
		}
	}
	err := r.db.WithContext(ctx).
		Where("route_instance_id = ?", dto.ID).
		Delete(&RouteStepDTO{}).Error
	if err != nil {
		return err
	}

	if len(dto.Steps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&dto.Steps).Error
}
