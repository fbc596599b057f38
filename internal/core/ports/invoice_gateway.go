package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
)

// InvoiceSubmission is the side-effect contract of the invoice wizard:
// the confirmations gathered on screen plus a caller-generated
// correlation id for idempotency and tracing.
type InvoiceSubmission struct {
	OrderID                    kernel.UUID
	FinalReviewConfirmed       bool
	ReviewPaperworkConfirmed   bool
	ReviewPricingConfirmed     bool
	ReviewBillingConfirmed     bool
	SendAttachmentEmail        bool
	SelectedAttachmentIDs      []kernel.UUID
	AttachmentRecipientSummary string
	AttachmentSkipReason       string
	CorrelationID              kernel.UUID
	SubmittedByEmpNo           kernel.EmpNo
}

// InvoiceGateway submits an order for invoicing in the billing system.
// Implementations must treat a repeated CorrelationID as the same
// attempt and not double-submit.
type InvoiceGateway interface {
	Submit(ctx context.Context, submission InvoiceSubmission) error
}
