package pickup_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/pickup"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRequest(t *testing.T) *pickup.Request {
	t.Helper()

	r, err := pickup.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"ring the back door", testNow,
	)
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("should create request in Pending status", func(t *testing.T) {
		id := kernel.NewUUID()
		donationID := kernel.NewUUID()
		volunteerID := kernel.NewUUID()

		r, err := pickup.NewRequest(id, donationID, volunteerID, "notes", testNow)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, pickup.Pending, r.Status())
		assert.True(t, r.DonationID().IsEqual(donationID))
		assert.True(t, r.VolunteerID().IsEqual(volunteerID))
		assert.Equal(t, testNow, r.RequestedAt())
		assert.Equal(t, "notes", r.Notes())
		assert.Nil(t, r.AcceptedAt())
		assert.Nil(t, r.StartedAt())
		assert.Nil(t, r.CompletedAt())
	})

	t.Run("should require donation and volunteer references", func(t *testing.T) {
		var missing kernel.UUID

		_, err := pickup.NewRequest(kernel.NewUUID(), missing, missing, "", testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "donation id")
		assert.Contains(t, err.Error(), "volunteer id")
	})
}

func TestRequest_Lifecycle(t *testing.T) {
	t.Run("should walk the full lifecycle stamping timestamps", func(t *testing.T) {
		r := newTestRequest(t)
		acceptAt := testNow.Add(5 * time.Minute)
		startAt := testNow.Add(20 * time.Minute)
		completeAt := testNow.Add(90 * time.Minute)

		require.NoError(t, r.Accept(acceptAt))
		assert.Equal(t, pickup.Accepted, r.Status())
		require.NotNil(t, r.AcceptedAt())
		assert.Equal(t, acceptAt, *r.AcceptedAt())

		require.NoError(t, r.Start(startAt))
		assert.Equal(t, pickup.InProgress, r.Status())
		require.NotNil(t, r.StartedAt())

		require.NoError(t, r.Complete(completeAt))
		assert.Equal(t, pickup.Completed, r.Status())
		require.NotNil(t, r.CompletedAt())
		assert.Equal(t, completeAt, *r.CompletedAt())
	})

	t.Run("should reject start before accept", func(t *testing.T) {
		r := newTestRequest(t)

		err := r.Start(testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "Pending")
		assert.Contains(t, err.Error(), "start")
		assert.Equal(t, pickup.Pending, r.Status())
	})

	t.Run("should reject complete before start", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.Accept(testNow))

		err := r.Complete(testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRequest_Cancel(t *testing.T) {
	t.Run("should cancel from every non-terminal status", func(t *testing.T) {
		fromPending := newTestRequest(t)
		require.NoError(t, fromPending.Cancel())
		assert.Equal(t, pickup.Cancelled, fromPending.Status())

		fromAccepted := newTestRequest(t)
		require.NoError(t, fromAccepted.Accept(testNow))
		require.NoError(t, fromAccepted.Cancel())

		fromInProgress := newTestRequest(t)
		require.NoError(t, fromInProgress.Accept(testNow))
		require.NoError(t, fromInProgress.Start(testNow))
		require.NoError(t, fromInProgress.Cancel())
	})

	t.Run("should reject cancel of completed request", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.Accept(testNow))
		require.NoError(t, r.Start(testNow))
		require.NoError(t, r.Complete(testNow))

		err := r.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "Completed")
	})

	t.Run("should reject cancel of cancelled request", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.Cancel())

		err := r.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRequest_SetEstimate(t *testing.T) {
	t.Run("should record distance and duration", func(t *testing.T) {
		r := newTestRequest(t)

		require.NoError(t, r.SetEstimate(3.4, 25))

		assert.Equal(t, 3.4, r.Distance())
		assert.Equal(t, 25, r.EstimatedDuration())
	})

	t.Run("should reject negative values", func(t *testing.T) {
		r := newTestRequest(t)

		require.Error(t, r.SetEstimate(-1, 25))
		require.Error(t, r.SetEstimate(1, -25))
	})
}

func TestRestoreRequest(t *testing.T) {
	t.Run("should rehydrate all fields", func(t *testing.T) {
		acceptedAt := testNow.Add(time.Minute)

		r, err := pickup.RestoreRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			pickup.Accepted, testNow, &acceptedAt, nil, nil,
			"fragile", 2.5, 15, 4,
		)

		require.NoError(t, err)
		assert.Equal(t, pickup.Accepted, r.Status())
		assert.Equal(t, 2.5, r.Distance())
		assert.Equal(t, 15, r.EstimatedDuration())
		assert.Equal(t, 4, r.Version())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := pickup.RestoreRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			pickup.Status("Paused"), testNow, nil, nil, nil, "", 0, 0, 0,
		)

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, pickup.Completed.IsTerminal())
	assert.True(t, pickup.Cancelled.IsTerminal())
	assert.False(t, pickup.Pending.IsTerminal())
	assert.False(t, pickup.Accepted.IsTerminal())
	assert.False(t, pickup.InProgress.IsTerminal())
}
