package postgres

import (
	"shopfloor/internal/adapters/out/postgres/dispatchrepo"
	"shopfloor/internal/adapters/out/postgres/invoicegw"
	"shopfloor/internal/adapters/out/postgres/orderrepo"
	"shopfloor/internal/adapters/out/postgres/reasonrepo"
	"shopfloor/internal/adapters/out/postgres/reviewrepo"
	"shopfloor/internal/adapters/out/postgres/routerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the adapters persist to.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&routerepo.RouteInstanceDTO{},
		&routerepo.RouteStepDTO{},
		&routerepo.UsageEntryDTO{},
		&routerepo.ScrapEntryDTO{},
		&routerepo.SerialEntryDTO{},
		&routerepo.ChecklistEntryDTO{},
		&reasonrepo.HoldReasonCodeDTO{},
		&reviewrepo.ReviewRecordDTO{},
		&dispatchrepo.TransportRecordDTO{},
		&invoicegw.InvoiceSubmissionDTO{},
	)
}
