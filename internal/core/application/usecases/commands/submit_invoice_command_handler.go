package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/ports"
)

// SubmitInvoiceCommandHandler runs the invoice-submission boundary: the
// order is validated for advancement first, the billing system is called
// second, and the order moves to Invoiced only after the gateway
// accepts. A gateway failure leaves the order in InvoiceReady so the
// wizard can retry with the same correlation id.
type SubmitInvoiceCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.InvoiceGateway
	clock      func() time.Time
}

// NewSubmitInvoiceCommandHandler creates a handler for invoice
// submission.
func NewSubmitInvoiceCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.InvoiceGateway,
) SubmitInvoiceCommandHandler {
	return SubmitInvoiceCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		clock:      time.Now,
	}
}

// Handle submits the order for invoicing and closes it.
func (h SubmitInvoiceCommandHandler) Handle(ctx context.Context, cmd SubmitInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = aggregate.ValidateAdvance(order.Invoiced); err != nil {
		return err
	}

	if err = h.gateway.Submit(ctx, ports.InvoiceSubmission{
		OrderID:                    cmd.OrderID(),
		FinalReviewConfirmed:       true,
		ReviewPaperworkConfirmed:   true,
		ReviewPricingConfirmed:     true,
		ReviewBillingConfirmed:     true,
		SendAttachmentEmail:        cmd.SendAttachmentEmail(),
		SelectedAttachmentIDs:      cmd.SelectedAttachmentIDs(),
		AttachmentRecipientSummary: cmd.AttachmentRecipientSummary(),
		AttachmentSkipReason:       cmd.AttachmentSkipReason(),
		CorrelationID:              cmd.CorrelationID(),
		SubmittedByEmpNo:           cmd.EmpNo(),
	}); err != nil {
		return err
	}

	if err = aggregate.Advance(order.Invoiced, cmd.EmpNo(), h.clock().UTC()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
