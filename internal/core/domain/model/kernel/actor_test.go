package kernel_test

import (
	"testing"

	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should parse all valid role names", func(t *testing.T) {
		testCases := map[string]kernel.Role{
			"customer":   kernel.RoleCustomer,
			"translator": kernel.RoleTranslator,
			"admin":      kernel.RoleAdmin,
			"superadmin": kernel.RoleSuperAdmin,
		}

		for name, expected := range testCases {
			role, err := kernel.RoleFromString(name)

			require.NoError(t, err, "role %q should parse", name)
			assert.Equal(t, expected, role)
		}
	})

	t.Run("should fail for unknown role names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Customer", "root"} {
			_, err := kernel.RoleFromString(name)

			require.Error(t, err, "role %q should not parse", name)
			assert.Contains(t, err.Error(), "role is invalid")
		}
	})
}

func TestRole_String(t *testing.T) {
	t.Run("should render role names", func(t *testing.T) {
		assert.Equal(t, "customer", kernel.RoleCustomer.String())
		assert.Equal(t, "translator", kernel.RoleTranslator.String())
		assert.Equal(t, "admin", kernel.RoleAdmin.String())
		assert.Equal(t, "superadmin", kernel.RoleSuperAdmin.String())
	})

	t.Run("should render unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", kernel.RoleUnknown.String())
		assert.Equal(t, "unknown", kernel.Role(42).String())
	})
}

func TestRole_IsPrivileged(t *testing.T) {
	t.Run("should report admin roles as privileged", func(t *testing.T) {
		assert.True(t, kernel.RoleAdmin.IsPrivileged())
		assert.True(t, kernel.RoleSuperAdmin.IsPrivileged())
	})

	t.Run("should report party roles as unprivileged", func(t *testing.T) {
		assert.False(t, kernel.RoleCustomer.IsPrivileged())
		assert.False(t, kernel.RoleTranslator.IsPrivileged())
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should pass for permitted roles", func(t *testing.T) {
		for _, role := range []kernel.Role{
			kernel.RoleCustomer, kernel.RoleTranslator,
			kernel.RoleAdmin, kernel.RoleSuperAdmin,
		} {
			assert.NoError(t, role.Validate())
		}
	})

	t.Run("should fail for RoleUnknown and out of range values", func(t *testing.T) {
		assert.Error(t, kernel.RoleUnknown.Validate())
		assert.Error(t, kernel.Role(42).Validate())
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor with valid id and role", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleTranslator)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, id.IsEqual(actor.ID()))
		assert.Equal(t, kernel.RoleTranslator, actor.Role())
	})

	t.Run("should fail with zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := kernel.NewActor(id, kernel.RoleCustomer)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleUnknown)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role is invalid")
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("should fail for zero value actor", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
	})
}
