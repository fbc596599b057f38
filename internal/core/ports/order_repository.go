package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates:
// the lifecycle status, hold overlay, stage dates and lines travel
// together as one consistency boundary.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// HoldReasonRepository defines the persistence contract for the
// configured hold reason codes, keyed by overlay type plus code name.
type HoldReasonRepository interface {
	// Add persists a new reason code.
	Add(ctx context.Context, code *order.HoldReasonCode) error

	// Update persists changes to an existing reason code.
	Update(ctx context.Context, code *order.HoldReasonCode) error

	// Get retrieves a reason code by id.
	Get(ctx context.Context, id kernel.UUID) (*order.HoldReasonCode, error)

	// GetByTypeAndCode retrieves a reason code by its natural key. Hold
	// application resolves submitted codes through this lookup.
	GetByTypeAndCode(ctx context.Context, holdType order.HoldType, code string) (*order.HoldReasonCode, error)

	// Delete removes a reason code from configuration. Historical audit
	// entries referencing the code are unaffected.
	Delete(ctx context.Context, id kernel.UUID) error
}
