// Package reasonrepo persists the configured hold reason codes.
package reasonrepo

import (
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HoldReasonCodeDTO is the database representation of a reason code. The
// (hold_type, code) pair is the natural key hold application resolves
// submitted codes by.
type HoldReasonCodeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HoldType    int       `gorm:"uniqueIndex:idx_hold_reason_type_code"`
	Code        string    `gorm:"uniqueIndex:idx_hold_reason_type_code"`
	Description string
	Active      bool
}

// TableName overrides GORM's default naming.
func (HoldReasonCodeDTO) TableName() string {
	return "hold_reason_codes"
}

func fromDomain(code *order.HoldReasonCode) HoldReasonCodeDTO {
	return HoldReasonCodeDTO{
		ID:          code.ID().Bytes(),
		HoldType:    int(code.HoldType()),
		Code:        code.Code(),
		Description: code.Description(),
		Active:      code.IsActive(),
	}
}

func toDomain(dto HoldReasonCodeDTO) (*order.HoldReasonCode, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreHoldReasonCode(
		id, order.HoldType(dto.HoldType), dto.Code, dto.Description, dto.Active)
}
