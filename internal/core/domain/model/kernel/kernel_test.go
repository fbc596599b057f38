package kernel_test

import (
	"testing"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("NewUUID produces a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID
		assert.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("round trip through string", func(t *testing.T) {
		id := kernel.NewUUID()
		parsed, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("round trip through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()
		parsed, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("malformed string is rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		assert.Error(t, err)
	})
}

func TestRole(t *testing.T) {
	t.Run("valid roles pass validation", func(t *testing.T) {
		for _, role := range []kernel.Role{
			kernel.RoleOperator,
			kernel.RoleSupervisor,
			kernel.RoleAdministrator,
			kernel.RoleClerk,
		} {
			assert.NoError(t, role.Validate(), role.String())
		}
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		assert.ErrorIs(t, kernel.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, kernel.Role(99).Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("RoleFromString round trip", func(t *testing.T) {
		role, err := kernel.RoleFromString("Supervisor")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleSupervisor, role)

		_, err = kernel.RoleFromString("Intern")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("capabilities", func(t *testing.T) {
		assert.True(t, kernel.RoleAdministrator.CanAdminister())
		assert.False(t, kernel.RoleSupervisor.CanAdminister())
		assert.True(t, kernel.RoleSupervisor.CanReview())
		assert.True(t, kernel.RoleAdministrator.CanReview())
		assert.False(t, kernel.RoleOperator.CanReview())
	})
}

func TestEmpNo(t *testing.T) {
	t.Run("non-empty employee number is valid", func(t *testing.T) {
		empNo, err := kernel.NewEmpNo("E1042")
		require.NoError(t, err)
		assert.Equal(t, "E1042", empNo.String())
	})

	t.Run("empty employee number is rejected", func(t *testing.T) {
		_, err := kernel.NewEmpNo("")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
