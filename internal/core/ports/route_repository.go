package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route instances.
// A route aggregate is loaded and stored with all of its steps and their
// capture ledgers, so the gate always evaluates against current entries.
type RouteRepository interface {
	// Add persists a new route instance with its steps.
	Add(ctx context.Context, aggregate *route.RouteInstance) error

	// Update persists changes to a route instance, its steps and ledgers.
	Update(ctx context.Context, aggregate *route.RouteInstance) error

	// Get retrieves a route instance by id.
	Get(ctx context.Context, id kernel.UUID) (*route.RouteInstance, error)

	// GetByLineID retrieves the route instance producing an order line.
	GetByLineID(ctx context.Context, lineID kernel.UUID) (*route.RouteInstance, error)

	// GetAllByOrderID retrieves every route instance across an order's
	// lines. Lifecycle advancement to ProductionComplete checks all of
	// them for completion.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*route.RouteInstance, error)
}
