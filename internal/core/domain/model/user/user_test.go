package user_test

import (
	"testing"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/user"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create active user", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "scarter", "sam@example.com", "hunter2",
			user.RoleVolunteer, "Sam", "Carter", "555-0102")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.IsActive())
		assert.Equal(t, user.RoleVolunteer, u.Role())
		assert.Equal(t, "Sam Carter", u.FullName())
	})

	t.Run("should require username, email, and password", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "", "", user.RoleAdmin, "", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "username")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "scarter", "not-an-email", "pw",
			user.RoleVolunteer, "", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "scarter", "sam@example.com", "pw",
			user.Role("Moderator"), "", "", "")

		require.Error(t, err)
	})
}

func TestRole_Validate(t *testing.T) {
	for _, r := range []user.Role{user.RoleAdmin, user.RoleRestaurant, user.RoleVolunteer} {
		require.NoError(t, r.Validate(), r.String())
	}
	require.Error(t, user.Role("").Validate())
}

func TestRestoreUser(t *testing.T) {
	t.Run("should rehydrate account state", func(t *testing.T) {
		u, err := user.RestoreUser(kernel.NewUUID(), "scarter", "sam@example.com", "pw",
			user.RoleRestaurant, "Sam", "Carter", "555-0102", false, 3)

		require.NoError(t, err)
		assert.False(t, u.IsActive())
		assert.Equal(t, 3, u.Version())
	})
}
