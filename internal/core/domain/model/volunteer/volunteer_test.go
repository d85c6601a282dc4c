package volunteer_test

import (
	"testing"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/volunteer"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVolunteer(t *testing.T) *volunteer.Volunteer {
	t.Helper()

	v, err := volunteer.NewVolunteer(kernel.NewUUID(), "Sam Carter", "Van", "ABC-123", "Weekends")
	require.NoError(t, err)
	return v
}

func TestNewVolunteer(t *testing.T) {
	t.Run("should create available active volunteer", func(t *testing.T) {
		v := newTestVolunteer(t)

		require.NoError(t, v.Validate())
		assert.True(t, v.IsAvailable())
		assert.Equal(t, volunteer.Active, v.Status())
		assert.Equal(t, 0, v.TotalPickups())
		assert.Nil(t, v.UserID())
	})

	t.Run("should require name and vehicle type", func(t *testing.T) {
		_, err := volunteer.NewVolunteer(kernel.NewUUID(), "", "", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "volunteer name")
		assert.Contains(t, err.Error(), "vehicle type")
	})
}

func TestVolunteer_CanAccept(t *testing.T) {
	t.Run("active and available volunteer can accept", func(t *testing.T) {
		v := newTestVolunteer(t)

		require.NoError(t, v.CanAccept())
	})

	t.Run("unavailable volunteer cannot accept", func(t *testing.T) {
		v := newTestVolunteer(t)
		v.SetAvailable(false)

		err := v.CanAccept()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "unavailable")
	})

	t.Run("suspended volunteer cannot accept", func(t *testing.T) {
		v := newTestVolunteer(t)
		v.Suspend()

		err := v.CanAccept()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "suspended")
	})

	t.Run("inactive volunteer cannot accept", func(t *testing.T) {
		v := newTestVolunteer(t)
		v.Deactivate()

		require.Error(t, v.CanAccept())

		v.Activate()
		require.NoError(t, v.CanAccept())
	})
}

func TestVolunteer_RecordPickup(t *testing.T) {
	v := newTestVolunteer(t)

	v.RecordPickup()
	v.RecordPickup()

	assert.Equal(t, 2, v.TotalPickups())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept contract values", func(t *testing.T) {
		for _, s := range []volunteer.Status{volunteer.Active, volunteer.Inactive, volunteer.Suspended} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown value", func(t *testing.T) {
		require.Error(t, volunteer.Status("Retired").Validate())
	})
}

func TestRestoreVolunteer(t *testing.T) {
	t.Run("should rehydrate status and totals", func(t *testing.T) {
		userID := kernel.NewUUID()

		v, err := volunteer.RestoreVolunteer(
			kernel.NewUUID(), &userID,
			"Sam Carter", "Van", "ABC-123", "Weekends",
			false, 31, 4.9, volunteer.Suspended, 9,
		)

		require.NoError(t, err)
		assert.Equal(t, volunteer.Suspended, v.Status())
		assert.False(t, v.IsAvailable())
		assert.Equal(t, 31, v.TotalPickups())
		assert.Equal(t, 9, v.Version())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := volunteer.RestoreVolunteer(
			kernel.NewUUID(), nil, "Sam", "Van", "", "",
			true, 0, 0, volunteer.Status("Gone"), 0,
		)

		require.Error(t, err)
	})
}
