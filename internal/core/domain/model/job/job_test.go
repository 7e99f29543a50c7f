package job_test

import (
	"testing"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingJob(t *testing.T) *job.Job {
	t.Helper()
	booked, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(),
		"Conference interpretation", "Annual medical congress", time.Now().UTC())
	require.NoError(t, err)
	return booked
}

func newAssignedJob(t *testing.T, translatorID kernel.UUID) *job.Job {
	t.Helper()
	booked := newPendingJob(t)
	require.NoError(t, booked.Accept(translatorID, time.Now().UTC()))
	return booked
}

func TestNewJob(t *testing.T) {
	validID := kernel.NewUUID()
	validCustomerID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should create pending job with all valid parameters", func(t *testing.T) {
		booked, err := job.NewJob(validID, validCustomerID, "Court interpretation", "Hall 4", now)

		require.NoError(t, err)
		require.NoError(t, booked.Validate())
		assert.True(t, booked.ID().IsEqual(validID))
		assert.True(t, booked.CustomerID().IsEqual(validCustomerID))
		assert.Equal(t, "Court interpretation", booked.Title())
		assert.Equal(t, "Hall 4", booked.Description())
		assert.Equal(t, job.Pending, booked.Status())
		assert.Nil(t, booked.Translator())
		assert.Equal(t, kernel.No, booked.Flagged())
		assert.Equal(t, kernel.No, booked.ManuallyHandled())
		assert.Equal(t, kernel.No, booked.ByAdmin())
		assert.Nil(t, booked.SessionTime())
		assert.Nil(t, booked.CancelledBy())
		assert.Equal(t, now, booked.CreatedAt())
	})

	t.Run("should allow empty description", func(t *testing.T) {
		booked, err := job.NewJob(validID, validCustomerID, "Phone interpretation", "", now)

		require.NoError(t, err)
		assert.Empty(t, booked.Description())
	})

	t.Run("should fail without a title", func(t *testing.T) {
		_, err := job.NewJob(validID, validCustomerID, "", "Description only", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero value identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := job.NewJob(invalidID, invalidID, "Title", "", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestRestoreJob(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should restore a persisted assigned job", func(t *testing.T) {
		translatorID := kernel.NewUUID()

		restored, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), &translatorID,
			"Title", "Description", "contact@example.com",
			job.Assigned, "looks fine",
			kernel.Yes, kernel.No, kernel.No,
			nil, nil, nil, nil, now, now,
		)

		require.NoError(t, err)
		assert.Equal(t, job.Assigned, restored.Status())
		assert.True(t, translatorID.IsEqual(*restored.Translator()))
		assert.Equal(t, "contact@example.com", restored.ContactEmail())
		assert.Equal(t, "looks fine", restored.AdminComments())
		assert.Equal(t, kernel.Yes, restored.Flagged())
	})

	t.Run("should reject assigned row without translator", func(t *testing.T) {
		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			"Title", "", "",
			job.Assigned, "",
			kernel.No, kernel.No, kernel.No,
			nil, nil, nil, nil, now, now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject pending row with translator", func(t *testing.T) {
		translatorID := kernel.NewUUID()

		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), &translatorID,
			"Title", "", "",
			job.Pending, "",
			kernel.No, kernel.No, kernel.No,
			nil, nil, nil, nil, now, now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			"Title", "", "",
			job.StatusUnknown, "",
			kernel.No, kernel.No, kernel.No,
			nil, nil, nil, nil, now, now,
		)

		require.Error(t, err)
	})
}

func TestJob_Accept(t *testing.T) {
	t.Run("should assign the accepting translator", func(t *testing.T) {
		booked := newPendingJob(t)
		translatorID := kernel.NewUUID()

		err := booked.Accept(translatorID, time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, job.Assigned, booked.Status())
		require.NotNil(t, booked.Translator())
		assert.True(t, translatorID.IsEqual(*booked.Translator()))
	})

	t.Run("should fail for an already assigned job and leave it unchanged", func(t *testing.T) {
		winnerID := kernel.NewUUID()
		booked := newAssignedJob(t, winnerID)

		err := booked.Accept(kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, job.Assigned, booked.Status())
		assert.True(t, winnerID.IsEqual(*booked.Translator()))
	})

	t.Run("should fail with zero value translator id", func(t *testing.T) {
		booked := newPendingJob(t)
		var invalidID kernel.UUID

		err := booked.Accept(invalidID, time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, job.Pending, booked.Status())
		assert.Nil(t, booked.Translator())
	})
}

func TestJob_Start(t *testing.T) {
	t.Run("should start the session for the assigned translator", func(t *testing.T) {
		translatorID := kernel.NewUUID()
		booked := newAssignedJob(t, translatorID)
		startedAt := time.Now().UTC()

		err := booked.Start(translatorID, startedAt)

		require.NoError(t, err)
		assert.Equal(t, job.InProgress, booked.Status())
		require.NotNil(t, booked.StartedAt())
		assert.Equal(t, startedAt, *booked.StartedAt())
	})

	t.Run("should fail for another translator", func(t *testing.T) {
		booked := newAssignedJob(t, kernel.NewUUID())

		err := booked.Start(kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, job.ErrTranslatorMismatch)
		assert.Equal(t, job.Assigned, booked.Status())
	})

	t.Run("should fail for a pending job", func(t *testing.T) {
		booked := newPendingJob(t)

		err := booked.Start(kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, job.ErrTranslatorMismatch)
	})
}

func TestJob_Complete(t *testing.T) {
	t.Run("should record completion time and session duration", func(t *testing.T) {
		translatorID := kernel.NewUUID()
		booked := newAssignedJob(t, translatorID)
		startedAt := time.Now().UTC()
		require.NoError(t, booked.Start(translatorID, startedAt))

		completedAt := startedAt.Add(90 * time.Minute)
		err := booked.Complete(completedAt)

		require.NoError(t, err)
		assert.Equal(t, job.Completed, booked.Status())
		require.NotNil(t, booked.CompletedAt())
		assert.Equal(t, completedAt, *booked.CompletedAt())
		require.NotNil(t, booked.SessionTime())
		assert.Equal(t, 90*time.Minute, *booked.SessionTime())
	})

	t.Run("should fail for a session that never started", func(t *testing.T) {
		booked := newAssignedJob(t, kernel.NewUUID())

		err := booked.Complete(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, job.Assigned, booked.Status())
	})
}

func TestJob_Cancel(t *testing.T) {
	newActor := func(role kernel.Role) kernel.Actor {
		actor, err := kernel.NewActor(kernel.NewUUID(), role)
		require.NoError(t, err)
		return actor
	}

	t.Run("should record the cancelling role", func(t *testing.T) {
		testCases := []kernel.Role{kernel.RoleCustomer, kernel.RoleTranslator, kernel.RoleAdmin}

		for _, role := range testCases {
			booked := newPendingJob(t)

			err := booked.Cancel(newActor(role), time.Now().UTC())

			require.NoError(t, err, "cancel by %s should succeed", role)
			assert.Equal(t, job.Cancelled, booked.Status())
			require.NotNil(t, booked.CancelledBy())
			assert.Equal(t, role, *booked.CancelledBy())
		}
	})

	t.Run("should cancel an assigned job keeping the assignment for audit", func(t *testing.T) {
		translatorID := kernel.NewUUID()
		booked := newAssignedJob(t, translatorID)

		err := booked.Cancel(newActor(kernel.RoleCustomer), time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, job.Cancelled, booked.Status())
		require.NotNil(t, booked.Translator())
		assert.True(t, translatorID.IsEqual(*booked.Translator()))
	})

	t.Run("should fail for a completed job", func(t *testing.T) {
		translatorID := kernel.NewUUID()
		booked := newAssignedJob(t, translatorID)
		require.NoError(t, booked.Start(translatorID, time.Now().UTC()))
		require.NoError(t, booked.Complete(time.Now().UTC()))

		err := booked.Cancel(newActor(kernel.RoleAdmin), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should fail for a zero value actor", func(t *testing.T) {
		booked := newPendingJob(t)
		var actor kernel.Actor

		err := booked.Cancel(actor, time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, job.Pending, booked.Status())
	})
}

func TestJob_MarkNoShow(t *testing.T) {
	t.Run("should mark an accepted job", func(t *testing.T) {
		booked := newAssignedJob(t, kernel.NewUUID())

		err := booked.MarkNoShow(time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, job.NoShow, booked.Status())
	})

	t.Run("should fail for a job nobody accepted", func(t *testing.T) {
		booked := newPendingJob(t)

		err := booked.MarkNoShow(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestJob_Reopen(t *testing.T) {
	t.Run("should clear assignment and session timestamps", func(t *testing.T) {
		translatorID := kernel.NewUUID()
		booked := newAssignedJob(t, translatorID)
		require.NoError(t, booked.Start(translatorID, time.Now().UTC()))
		require.NoError(t, booked.Complete(time.Now().UTC()))

		err := booked.Reopen(time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, job.Pending, booked.Status())
		assert.Nil(t, booked.Translator())
		assert.Nil(t, booked.StartedAt())
		assert.Nil(t, booked.CompletedAt())
		assert.Nil(t, booked.CancelledBy())
	})

	t.Run("should preserve audit fields and recorded session time", func(t *testing.T) {
		translatorID := kernel.NewUUID()
		booked := newAssignedJob(t, translatorID)
		require.NoError(t, booked.Start(translatorID, time.Now().UTC()))
		require.NoError(t, booked.Complete(time.Now().UTC().Add(time.Hour)))

		comment := "billing dispute"
		flagged := kernel.Yes
		require.NoError(t, booked.ApplyOverrides(job.Overrides{
			AdminComments: &comment,
			Flagged:       &flagged,
		}, time.Now().UTC()))

		require.NoError(t, booked.Reopen(time.Now().UTC()))

		assert.Equal(t, comment, booked.AdminComments())
		assert.Equal(t, kernel.Yes, booked.Flagged())
		assert.NotNil(t, booked.SessionTime())
	})

	t.Run("should allow a full accept-cancel-reopen-accept cycle", func(t *testing.T) {
		booked := newPendingJob(t)
		firstTranslator := kernel.NewUUID()
		require.NoError(t, booked.Accept(firstTranslator, time.Now().UTC()))

		actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleTranslator)
		require.NoError(t, err)
		require.NoError(t, booked.Cancel(actor, time.Now().UTC()))
		require.NoError(t, booked.Reopen(time.Now().UTC()))

		secondTranslator := kernel.NewUUID()
		require.NoError(t, booked.Accept(secondTranslator, time.Now().UTC()))

		assert.Equal(t, job.Assigned, booked.Status())
		assert.True(t, secondTranslator.IsEqual(*booked.Translator()))
	})

	t.Run("should fail for a non-terminal job", func(t *testing.T) {
		booked := newPendingJob(t)

		err := booked.Reopen(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestJob_UpdateDetails(t *testing.T) {
	t.Run("should replace title and description", func(t *testing.T) {
		booked := newPendingJob(t)

		err := booked.UpdateDetails("Updated title", "Updated description", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, "Updated title", booked.Title())
		assert.Equal(t, "Updated description", booked.Description())
	})

	t.Run("should fail with empty title", func(t *testing.T) {
		booked := newPendingJob(t)

		err := booked.UpdateDetails("", "Description", time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, "Conference interpretation", booked.Title())
	})
}

func TestJob_SetContactEmail(t *testing.T) {
	t.Run("should record the contact email", func(t *testing.T) {
		booked := newPendingJob(t)

		err := booked.SetContactEmail("urgent@example.com", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, "urgent@example.com", booked.ContactEmail())
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		booked := newPendingJob(t)

		err := booked.SetContactEmail("", time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestJob_ApplyOverrides(t *testing.T) {
	t.Run("should write only supplied fields", func(t *testing.T) {
		booked := newPendingJob(t)
		sessionTime := 45 * time.Minute
		manually := kernel.Yes

		err := booked.ApplyOverrides(job.Overrides{
			SessionTime:     &sessionTime,
			ManuallyHandled: &manually,
		}, time.Now().UTC())

		require.NoError(t, err)
		require.NotNil(t, booked.SessionTime())
		assert.Equal(t, sessionTime, *booked.SessionTime())
		assert.Equal(t, kernel.Yes, booked.ManuallyHandled())

		assert.Empty(t, booked.AdminComments())
		assert.Equal(t, kernel.No, booked.Flagged())
		assert.Equal(t, kernel.No, booked.ByAdmin())
		assert.Equal(t, job.Pending, booked.Status())
	})

	t.Run("should reject invalid flag values", func(t *testing.T) {
		booked := newPendingJob(t)
		invalid := kernel.Flag(9)

		err := booked.ApplyOverrides(job.Overrides{Flagged: &invalid}, time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, kernel.No, booked.Flagged())
	})
}

func TestOverrides_IsEmpty(t *testing.T) {
	t.Run("should report empty for the zero value", func(t *testing.T) {
		assert.True(t, job.Overrides{}.IsEmpty())
	})

	t.Run("should report non-empty when any field is set", func(t *testing.T) {
		comment := "foo"
		assert.False(t, job.Overrides{AdminComments: &comment}.IsEmpty())
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value jobs", func(t *testing.T) {
		var nilJob *job.Job
		assert.ErrorIs(t, nilJob.Validate(), job.ErrJobIsNotConstructed)

		var zeroJob job.Job
		assert.ErrorIs(t, zeroJob.Validate(), job.ErrJobIsNotConstructed)
	})
}
