package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetHoldReasonsQueryHandler reads configured reason codes from the
// database.
type GetHoldReasonsQueryHandler struct {
	db *gorm.DB
}

// NewGetHoldReasonsQueryHandler creates a handler for reason code queries.
func NewGetHoldReasonsQueryHandler(db *gorm.DB) GetHoldReasonsQueryHandler {
	return GetHoldReasonsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetHoldReasonsQueryHandler) Handle(
	ctx context.Context,
	query GetHoldReasonsQuery,
) ([]GetHoldReasonsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	codes := make([]GetHoldReasonsQueryResponse, 0)

	sql := `
		SELECT
			id,
			code,
			description,
			active
		FROM hold_reason_codes
		WHERE hold_type = ?
	`
	if query.ActiveOnly() {
		sql += ` AND active`
	}
	sql += ` ORDER BY code`

	rows, err := h.db.WithContext(ctx).Raw(sql, int(query.HoldType())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var code GetHoldReasonsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &code.Code, &code.Description, &code.Active)
		if err != nil {
			return nil, err
		}

		if code.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		code.HoldType = query.HoldType().String()
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}
