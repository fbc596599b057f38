package commands_test

import (
	"context"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/dispatch"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/review"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.RouteInstance) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.RouteInstance) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.RouteInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.RouteInstance), args.Error(1)
}

func (m *MockRouteRepository) GetByLineID(ctx context.Context, lineID kernel.UUID) (*route.RouteInstance, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.RouteInstance), args.Error(1)
}

func (m *MockRouteRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*route.RouteInstance, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.RouteInstance), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.ReviewRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.ReviewRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.ReviewRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.ReviewRecord), args.Error(1)
}

func (m *MockReviewRepository) GetPendingForLine(
	ctx context.Context,
	lineID kernel.UUID,
	phase review.Phase,
) (*review.ReviewRecord, error) {
	args := m.Called(ctx, lineID, phase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.ReviewRecord), args.Error(1)
}

type MockHoldReasonRepository struct{ mock.Mock }

func (m *MockHoldReasonRepository) Add(ctx context.Context, rc *order.HoldReasonCode) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockHoldReasonRepository) Update(ctx context.Context, rc *order.HoldReasonCode) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockHoldReasonRepository) Get(ctx context.Context, id kernel.UUID) (*order.HoldReasonCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.HoldReasonCode), args.Error(1)
}

func (m *MockHoldReasonRepository) GetByTypeAndCode(
	ctx context.Context,
	holdType order.HoldType,
	code string,
) (*order.HoldReasonCode, error) {
	args := m.Called(ctx, holdType, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.HoldReasonCode), args.Error(1)
}

func (m *MockHoldReasonRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDispatchRepository struct{ mock.Mock }

func (m *MockDispatchRepository) Get(ctx context.Context, orderID kernel.UUID) (dispatch.Record, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(dispatch.Record), args.Error(1)
}

func (m *MockDispatchRepository) GetAll(ctx context.Context) ([]dispatch.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dispatch.Record), args.Error(1)
}

func (m *MockDispatchRepository) ApplyPatch(ctx context.Context, patch dispatch.Patch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

type MockQueueCache struct{ mock.Mock }

func (m *MockQueueCache) Get(
	ctx context.Context,
	workCenterID kernel.UUID,
) ([]ports.WorkCenterQueueItem, bool, error) {
	args := m.Called(ctx, workCenterID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]ports.WorkCenterQueueItem), args.Bool(1), args.Error(2)
}

func (m *MockQueueCache) Put(
	ctx context.Context,
	workCenterID kernel.UUID,
	items []ports.WorkCenterQueueItem,
) error {
	args := m.Called(ctx, workCenterID, items)
	return args.Error(0)
}

func (m *MockQueueCache) Invalidate(ctx context.Context, workCenterID kernel.UUID) error {
	args := m.Called(ctx, workCenterID)
	return args.Error(0)
}

type MockInvoiceGateway struct{ mock.Mock }

func (m *MockInvoiceGateway) Submit(ctx context.Context, submission ports.InvoiceSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRouteUoW struct{ mockTx }

func (m *MockRouteUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderRouteUoW struct{ mockTx }

func (m *MockOrderRouteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderRouteUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockOrderRouteUoWFactory struct{ mock.Mock }

func (m *MockOrderRouteUoWFactory) Create() commands.OrderRouteUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderRouteUoW)
}

type MockOrderReasonUoW struct{ mockTx }

func (m *MockOrderReasonUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderReasonUoW) HoldReasonRepository() ports.HoldReasonRepository {
	args := m.Called()
	return args.Get(0).(ports.HoldReasonRepository)
}

type MockOrderReasonUoWFactory struct{ mock.Mock }

func (m *MockOrderReasonUoWFactory) Create() commands.OrderReasonUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderReasonUoW)
}

type MockReviewUoW struct{ mockTx }

func (m *MockReviewUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

func (m *MockReviewUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockDispatchUoW struct{ mockTx }

func (m *MockDispatchUoW) DispatchRepository() ports.DispatchRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatchRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}
