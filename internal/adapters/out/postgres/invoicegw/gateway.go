// Package invoicegw records invoice submissions handed to the billing
// system. Submissions are keyed by correlation id: retrying a failed
// wizard pass with the same id inserts nothing and reports success, so
// the billing side never sees the same attempt twice.
package invoicegw

import (
	"context"
	"encoding/json"
	"time"

	"shopfloor/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceSubmissionDTO is the database representation of one submission
// attempt.
type InvoiceSubmissionDTO struct {
	CorrelationID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID                    uuid.UUID `gorm:"type:uuid;index"`
	FinalReviewConfirmed       bool
	ReviewPaperworkConfirmed   bool
	ReviewPricingConfirmed     bool
	ReviewBillingConfirmed     bool
	SendAttachmentEmail        bool
	SelectedAttachmentIDs      []byte `gorm:"type:jsonb"`
	AttachmentRecipientSummary string
	AttachmentSkipReason       string
	SubmittedBy                string
	SubmittedUtc               time.Time
}

// TableName overrides GORM's default naming.
func (InvoiceSubmissionDTO) TableName() string {
	return "invoice_submissions"
}

// PostgresInvoiceGateway implements ports.InvoiceGateway on the service's
// own database. The billing system polls the submissions table through
// its integration feed, so accepting a submission means durably inserting
// its row.
type PostgresInvoiceGateway struct {
	db    *gorm.DB
	clock func() time.Time
}

// NewPostgresInvoiceGateway creates a gateway writing to the given
// connection.
func NewPostgresInvoiceGateway(db *gorm.DB) *PostgresInvoiceGateway {
	return &PostgresInvoiceGateway{
		db:    db,
		clock: time.Now,
	}
}

// Submit records the submission. A correlation id seen before is the
// same attempt: the insert is skipped and the call succeeds.
func (g *PostgresInvoiceGateway) Submit(ctx context.Context, submission ports.InvoiceSubmission) error {
	if err := submission.CorrelationID.Validate(); err != nil {
		return err
	}
	if err := submission.OrderID.Validate(); err != nil {
		return err
	}
	if err := submission.SubmittedByEmpNo.Validate(); err != nil {
		return err
	}

	attachmentIDs := make([]uuid.UUID, 0, len(submission.SelectedAttachmentIDs))
	for _, id := range submission.SelectedAttachmentIDs {
		attachmentIDs = append(attachmentIDs, id.Bytes())
	}
	payload, err := json.Marshal(attachmentIDs)
	if err != nil {
		return err
	}

	dto := InvoiceSubmissionDTO{
		CorrelationID:              submission.CorrelationID.Bytes(),
		OrderID:                    submission.OrderID.Bytes(),
		FinalReviewConfirmed:       submission.FinalReviewConfirmed,
		ReviewPaperworkConfirmed:   submission.ReviewPaperworkConfirmed,
		ReviewPricingConfirmed:     submission.ReviewPricingConfirmed,
		ReviewBillingConfirmed:     submission.ReviewBillingConfirmed,
		SendAttachmentEmail:        submission.SendAttachmentEmail,
		SelectedAttachmentIDs:      payload,
		AttachmentRecipientSummary: submission.AttachmentRecipientSummary,
		AttachmentSkipReason:       submission.AttachmentSkipReason,
		SubmittedBy:                submission.SubmittedByEmpNo.String(),
		SubmittedUtc:               g.clock().UTC(),
	}

	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "correlation_id"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}
