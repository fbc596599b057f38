package cmd

import (
	"time"

	httpin "shopfloor/internal/adapters/in/http"
	"shopfloor/internal/adapters/out/postgres"
	"shopfloor/internal/adapters/out/postgres/invoicegw"
	"shopfloor/internal/adapters/out/redis/queuecache"
	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot builds every handler from the process-wide resources:
// one gorm connection pool, one redis client, one unit of work factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queueCache ports.WorkCenterQueueCache
	invoiceGW  ports.InvoiceGateway
}

// NewCompositionRoot wires the adapters onto the given connections.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	ttl := time.Duration(config.QueueCacheTTLSecs) * time.Second

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queueCache: queuecache.NewRedisWorkCenterQueueCache(redisClient, ttl),
		invoiceGW:  invoicegw.NewPostgresInvoiceGateway(gormDB),
	}
}

// Narrow unit of work factories. ports.UnitOfWork satisfies every narrow
// interface, so each factory just re-types the shared one.

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW { return f() }

type FuncOrderRouteUoWFactory func() commands.OrderRouteUoW

func (f FuncOrderRouteUoWFactory) Create() commands.OrderRouteUoW { return f() }

type FuncOrderReasonUoWFactory func() commands.OrderReasonUoW

func (f FuncOrderReasonUoWFactory) Create() commands.OrderReasonUoW { return f() }

type FuncReasonUoWFactory func() commands.ReasonUoW

func (f FuncReasonUoWFactory) Create() commands.ReasonUoW { return f() }

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW { return f() }

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW { return f() }

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderRouteUoWFactory() commands.OrderRouteUoWFactory {
	return FuncOrderRouteUoWFactory(func() commands.OrderRouteUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderReasonUoWFactory() commands.OrderReasonUoWFactory {
	return FuncOrderReasonUoWFactory(func() commands.OrderReasonUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) reasonUoWFactory() commands.ReasonUoWFactory {
	return FuncReasonUoWFactory(func() commands.ReasonUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW { return c.uowFactory.Create() })
}

// CreateGetWorkCenterQueueQueryHandler is used by both the HTTP server
// and the queue refresh job.
func (c *CompositionRoot) CreateGetWorkCenterQueueQueryHandler() queries.GetWorkCenterQueueQueryHandler {
	return queries.NewGetWorkCenterQueueQueryHandler(c.gormDB, c.queueCache)
}

// CreateHTTPHandlers builds the complete handler bundle for the HTTP
// server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:       commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		AdvanceOrder:      commands.NewAdvanceOrderStatusCommandHandler(c.orderRouteUoWFactory()),
		ApplyHold:         commands.NewApplyHoldCommandHandler(c.orderReasonUoWFactory()),
		ClearHold:         commands.NewClearHoldCommandHandler(c.orderUoWFactory()),
		SubmitInvoice:     commands.NewSubmitInvoiceCommandHandler(c.orderUoWFactory(), c.invoiceGW),
		CreateHoldReason:  commands.NewCreateHoldReasonCommandHandler(c.reasonUoWFactory()),
		UpdateHoldReason:  commands.NewUpdateHoldReasonCommandHandler(c.reasonUoWFactory()),
		DeleteHoldReason:  commands.NewDeleteHoldReasonCommandHandler(c.reasonUoWFactory()),
		ScanInStep:        commands.NewScanInStepCommandHandler(c.routeUoWFactory(), c.queueCache),
		ScanOutStep:       commands.NewScanOutStepCommandHandler(c.routeUoWFactory(), c.queueCache),
		RecordProgress:    commands.NewRecordStepProgressCommandHandler(c.routeUoWFactory(), c.queueCache),
		CompleteStep:      commands.NewCompleteStepCommandHandler(c.routeUoWFactory(), c.queueCache),
		AddUsage:          commands.NewAddStepUsageCommandHandler(c.routeUoWFactory()),
		UpdateUsage:       commands.NewUpdateStepUsageCommandHandler(c.routeUoWFactory()),
		DeleteUsage:       commands.NewDeleteStepUsageCommandHandler(c.routeUoWFactory()),
		AddScrap:          commands.NewAddStepScrapCommandHandler(c.routeUoWFactory()),
		AddSerial:         commands.NewAddStepSerialCommandHandler(c.routeUoWFactory()),
		AddChecklist:      commands.NewAddChecklistEntryCommandHandler(c.routeUoWFactory()),
		OverrideChecklist: commands.NewOverrideChecklistItemCommandHandler(c.routeUoWFactory()),
		ValidateRoute:     commands.NewValidateRouteCommandHandler(c.reviewUoWFactory()),
		AdjustRoute:       commands.NewAdjustRouteCommandHandler(c.reviewUoWFactory()),
		DecideReview:      commands.NewDecideRouteReviewCommandHandler(c.reviewUoWFactory()),
		ReopenRoute:       commands.NewReopenRouteCommandHandler(c.routeUoWFactory()),
		SaveBoard:         commands.NewSaveTransportBoardCommandHandler(c.dispatchUoWFactory()),

		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		GetLineRoute:      queries.NewGetLineRouteQueryHandler(c.gormDB),
		GetStepLedgers:    queries.NewGetStepLedgersQueryHandler(c.gormDB),
		GetWorkCenterQ:    c.CreateGetWorkCenterQueueQueryHandler(),
		GetPendingReviews: queries.NewGetPendingReviewsQueryHandler(c.gormDB),
		GetTransportBoard: queries.NewGetTransportBoardQueryHandler(c.gormDB),
		GetHoldReasons:    queries.NewGetHoldReasonsQueryHandler(c.gormDB),
	}
}
