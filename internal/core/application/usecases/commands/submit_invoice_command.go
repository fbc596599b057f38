package commands

import (
	"errors"
	"fmt"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrSubmitInvoiceCommandIsNotConstructed = errors.New(
		"SubmitInvoiceCommand must be created via NewSubmitInvoiceCommand constructor")

	// ErrWizardConfirmationMissing rejects a submission whose review
	// confirmations are incomplete.
	ErrWizardConfirmationMissing = errors.New("invoice wizard confirmation is missing")
)

// SubmitInvoiceCommand carries the invoice wizard's confirmations and
// hands the order to the billing system. The correlation id makes the
// submission idempotent: retrying with the same id never double-submits.
type SubmitInvoiceCommand struct { //nolint:recvcheck //using for validation
	orderID                    kernel.UUID
	finalReviewConfirmed       bool
	reviewPaperworkConfirmed   bool
	reviewPricingConfirmed     bool
	reviewBillingConfirmed     bool
	sendAttachmentEmail        bool
	selectedAttachmentIDs      []kernel.UUID
	attachmentRecipientSummary string
	attachmentSkipReason       string
	correlationID              kernel.UUID
	empNo                      kernel.EmpNo

	guard guard.ConstructorGuard
}

// SubmitInvoiceInput groups the wizard fields for construction.
type SubmitInvoiceInput struct {
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
	EmpNo                      kernel.EmpNo
}

// NewSubmitInvoiceCommand creates a validated submission command. All
// four review confirmations must be checked; skipping the attachment
// email requires a reason.
func NewSubmitInvoiceCommand(input SubmitInvoiceInput) (SubmitInvoiceCommand, error) {
	if err := errors.Join(
		input.OrderID.Validate(),
		input.CorrelationID.Validate(),
		input.EmpNo.Validate(),
	); err != nil {
		return SubmitInvoiceCommand{}, err
	}
	for name, confirmed := range map[string]bool{
		"finalReview":     input.FinalReviewConfirmed,
		"reviewPaperwork": input.ReviewPaperworkConfirmed,
		"reviewPricing":   input.ReviewPricingConfirmed,
		"reviewBilling":   input.ReviewBillingConfirmed,
	} {
		if !confirmed {
			return SubmitInvoiceCommand{}, fmt.Errorf("%w: %s", ErrWizardConfirmationMissing, name)
		}
	}
	if !input.SendAttachmentEmail && input.AttachmentSkipReason == "" {
		return SubmitInvoiceCommand{}, errs.NewValueIsRequiredError("attachmentSkipReason")
	}
	if input.SendAttachmentEmail && len(input.SelectedAttachmentIDs) == 0 {
		return SubmitInvoiceCommand{}, errs.NewValueIsRequiredError("selectedAttachmentIds")
	}

	return SubmitInvoiceCommand{
		orderID:                    input.OrderID,
		finalReviewConfirmed:       input.FinalReviewConfirmed,
		reviewPaperworkConfirmed:   input.ReviewPaperworkConfirmed,
		reviewPricingConfirmed:     input.ReviewPricingConfirmed,
		reviewBillingConfirmed:     input.ReviewBillingConfirmed,
		sendAttachmentEmail:        input.SendAttachmentEmail,
		selectedAttachmentIDs:      input.SelectedAttachmentIDs,
		attachmentRecipientSummary: input.AttachmentRecipientSummary,
		attachmentSkipReason:       input.AttachmentSkipReason,
		correlationID:              input.CorrelationID,
		empNo:                      input.EmpNo,
		guard:                      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSubmitInvoiceCommandIsNotConstructed)
}

// OrderID returns the order being invoiced.
func (c SubmitInvoiceCommand) OrderID() kernel.UUID { return c.orderID }

// SendAttachmentEmail reports whether attachments are emailed with the
// submission.
func (c SubmitInvoiceCommand) SendAttachmentEmail() bool { return c.sendAttachmentEmail }

// SelectedAttachmentIDs returns the attachments chosen for the email.
func (c SubmitInvoiceCommand) SelectedAttachmentIDs() []kernel.UUID { return c.selectedAttachmentIDs }

// AttachmentRecipientSummary returns the recipients shown on the wizard.
func (c SubmitInvoiceCommand) AttachmentRecipientSummary() string {
	return c.attachmentRecipientSummary
}

// AttachmentSkipReason returns why the attachment email was skipped.
func (c SubmitInvoiceCommand) AttachmentSkipReason() string { return c.attachmentSkipReason }

// CorrelationID returns the idempotency key of this submission attempt.
func (c SubmitInvoiceCommand) CorrelationID() kernel.UUID { return c.correlationID }

// EmpNo returns the submitting user.
func (c SubmitInvoiceCommand) EmpNo() kernel.EmpNo { return c.empNo }
