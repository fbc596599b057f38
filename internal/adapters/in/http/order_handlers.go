package http

import (
	"net/http"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	CustomerID string                   `json:"customerId"`
	SiteID     string                   `json:"siteId"`
	OrderDate  time.Time                `json:"orderDate"`
	Lines      []createOrderLineRequest `json:"lines"`
}

type createOrderLineRequest struct {
	LineNo          int    `json:"lineNo"`
	ItemID          string `json:"itemId"`
	QuantityOrdered int    `json:"quantityOrdered"`
}

type createOrderResponse struct {
	OrderID string   `json:"orderId"`
	LineIDs []string `json:"lineIds"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, err)
	}
	siteID, err := kernel.UUIDFromString(req.SiteID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	lines := make([]commands.OrderLineInput, 0, len(req.Lines))
	lineIDs := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		itemID, itemErr := kernel.UUIDFromString(line.ItemID)
		if itemErr != nil {
			return badRequest(ctx, itemErr)
		}
		lineID := kernel.NewUUID()
		lineIDs = append(lineIDs, lineID.String())
		lines = append(lines, commands.OrderLineInput{
			LineID:          lineID,
			LineNo:          line.LineNo,
			ItemID:          itemID,
			QuantityOrdered: line.QuantityOrdered,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, siteID, req.OrderDate, lines)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		OrderID: orderID.String(),
		LineIDs: lineIDs,
	})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type advanceOrderRequest struct {
	TargetStatus string `json:"targetStatus"`
	ActingRole   string `json:"actingRole"`
	EmpNo        string `json:"empNo"`
}

// AdvanceOrder handles POST /api/v1/orders/:orderId/advance.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req advanceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	targetStatus, err := order.LifecycleStatusFromString(req.TargetStatus)
	if err != nil {
		return badRequest(ctx, err)
	}
	actingRole, err := kernel.RoleFromString(req.ActingRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(
		orderID, targetStatus, actingRole, kernel.EmpNo(req.EmpNo))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type applyHoldRequest struct {
	HoldType   string `json:"holdType"`
	ReasonCode string `json:"reasonCode"`
	Note       string `json:"note"`
	ActingRole string `json:"actingRole"`
}

// ApplyHold handles POST /api/v1/orders/:orderId/holds.
func (s *Server) ApplyHold(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req applyHoldRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	holdType, err := order.HoldTypeFromString(req.HoldType)
	if err != nil {
		return badRequest(ctx, err)
	}
	actingRole, err := kernel.RoleFromString(req.ActingRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApplyHoldCommand(orderID, holdType, req.ReasonCode, req.Note, actingRole)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.ApplyHold.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type clearHoldRequest struct {
	ActingRole string `json:"actingRole"`
	Note       string `json:"note"`
}

// ClearHold handles POST /api/v1/orders/:orderId/holds/clear.
func (s *Server) ClearHold(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req clearHoldRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	actingRole, err := kernel.RoleFromString(req.ActingRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewClearHoldCommand(orderID, actingRole, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.ClearHold.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type submitInvoiceRequest struct {
	FinalReviewConfirmed       bool     `json:"finalReviewConfirmed"`
	ReviewPaperworkConfirmed   bool     `json:"reviewPaperworkConfirmed"`
	ReviewPricingConfirmed     bool     `json:"reviewPricingConfirmed"`
	ReviewBillingConfirmed     bool     `json:"reviewBillingConfirmed"`
	SendAttachmentEmail        bool     `json:"sendAttachmentEmail"`
	SelectedAttachmentIDs      []string `json:"selectedAttachmentIds"`
	AttachmentRecipientSummary string   `json:"attachmentRecipientSummary"`
	AttachmentSkipReason       string   `json:"attachmentSkipReason"`
	CorrelationID              string   `json:"correlationId"`
	EmpNo                      string   `json:"empNo"`
}

// SubmitInvoice handles POST /api/v1/orders/:orderId/invoice.
func (s *Server) SubmitInvoice(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req submitInvoiceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	correlationID, err := kernel.UUIDFromString(req.CorrelationID)
	if err != nil {
		return badRequest(ctx, err)
	}
	attachmentIDs := make([]kernel.UUID, 0, len(req.SelectedAttachmentIDs))
	for _, raw := range req.SelectedAttachmentIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		attachmentIDs = append(attachmentIDs, id)
	}

	cmd, err := commands.NewSubmitInvoiceCommand(commands.SubmitInvoiceInput{
		OrderID:                    orderID,
		FinalReviewConfirmed:       req.FinalReviewConfirmed,
		ReviewPaperworkConfirmed:   req.ReviewPaperworkConfirmed,
		ReviewPricingConfirmed:     req.ReviewPricingConfirmed,
		ReviewBillingConfirmed:     req.ReviewBillingConfirmed,
		SendAttachmentEmail:        req.SendAttachmentEmail,
		SelectedAttachmentIDs:      attachmentIDs,
		AttachmentRecipientSummary: req.AttachmentRecipientSummary,
		AttachmentSkipReason:       req.AttachmentSkipReason,
		CorrelationID:              correlationID,
		EmpNo:                      kernel.EmpNo(req.EmpNo),
	})
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.SubmitInvoice.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
