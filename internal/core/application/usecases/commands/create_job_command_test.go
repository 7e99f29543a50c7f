package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateJobCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		jobID := kernel.NewUUID()
		actor := customerActor(t)

		cmd, err := commands.NewCreateJobCommand(jobID, actor, "Business negotiation", "Two day contract review")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, jobID.IsEqual(cmd.JobID()))
		assert.Equal(t, "Business negotiation", cmd.Title())
		assert.Equal(t, "Two day contract review", cmd.Description())
	})

	t.Run("should allow empty description", func(t *testing.T) {
		cmd, err := commands.NewCreateJobCommand(kernel.NewUUID(), customerActor(t), "Phone call", "")

		require.NoError(t, err)
		assert.Empty(t, cmd.Description())
	})

	t.Run("should fail without a title", func(t *testing.T) {
		_, err := commands.NewCreateJobCommand(kernel.NewUUID(), customerActor(t), "", "Description")

		require.Error(t, err)
	})

	t.Run("should fail with zero value job id", func(t *testing.T) {
		var jobID kernel.UUID

		_, err := commands.NewCreateJobCommand(jobID, customerActor(t), "Title", "")

		require.Error(t, err)
	})

	t.Run("should fail with zero value actor", func(t *testing.T) {
		var actor kernel.Actor

		_, err := commands.NewCreateJobCommand(kernel.NewUUID(), actor, "Title", "")

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.CreateJobCommand

		require.Error(t, cmd.Validate())
	})
}
