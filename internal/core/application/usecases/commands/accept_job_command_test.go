package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translatorActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleTranslator)
	require.NoError(t, err)
	return actor
}

func customerActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)
	return actor
}

func TestNewAcceptJobCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		jobID := kernel.NewUUID()
		actor := translatorActor(t)

		cmd, err := commands.NewAcceptJobCommand(jobID, actor)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, jobID.IsEqual(cmd.JobID()))
		assert.True(t, actor.ID().IsEqual(cmd.Actor().ID()))
	})

	t.Run("should fail with zero value job id", func(t *testing.T) {
		var jobID kernel.UUID

		_, err := commands.NewAcceptJobCommand(jobID, translatorActor(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero value actor", func(t *testing.T) {
		var actor kernel.Actor

		_, err := commands.NewAcceptJobCommand(kernel.NewUUID(), actor)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.AcceptJobCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrAcceptJobCommandIsNotConstructed)
	})
}
