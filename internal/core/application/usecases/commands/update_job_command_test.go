package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateJobCommand(t *testing.T) {
	t.Run("should create command with valid params", func(t *testing.T) {
		// Arrange
		jobID := kernel.NewUUID()
		actor := customerActor(t)

		// Act
		cmd, err := commands.NewUpdateJobCommand(jobID, actor, "Hospital visit", "Ward 3, interpreter needed")

		// Assert
		require.NoError(t, err)
		assert.True(t, jobID.IsEqual(cmd.JobID()))
		assert.Equal(t, actor, cmd.Actor())
		assert.Equal(t, "Hospital visit", cmd.Title())
		assert.Equal(t, "Ward 3, interpreter needed", cmd.Description())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should allow empty description", func(t *testing.T) {
		// Arrange

		// Act
		cmd, err := commands.NewUpdateJobCommand(kernel.NewUUID(), customerActor(t), "Hospital visit", "")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, cmd.Description())
	})

	t.Run("should fail with empty title", func(t *testing.T) {
		// Arrange

		// Act
		_, err := commands.NewUpdateJobCommand(kernel.NewUUID(), customerActor(t), "", "details")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrTitleIsRequired)
	})

	t.Run("should fail with zero job id", func(t *testing.T) {
		// Arrange

		// Act
		_, err := commands.NewUpdateJobCommand(kernel.UUID{}, customerActor(t), "Hospital visit", "")

		// Assert
		require.Error(t, err)
	})

	t.Run("zero value command should not pass validation", func(t *testing.T) {
		// Arrange
		var cmd commands.UpdateJobCommand

		// Act
		err := cmd.Validate()

		// Assert
		assert.ErrorIs(t, err, commands.ErrUpdateJobCommandIsNotConstructed)
	})
}
