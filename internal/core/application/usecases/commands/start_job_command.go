package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrStartJobCommandIsNotConstructed = errors.New(
	"StartJobCommand must be created via NewStartJobCommand constructor",
)

// StartJobCommand marks the beginning of a translation session.
// Only the translator the job is assigned to may start it.
type StartJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartJobCommand creates a command to start an assigned job's session.
func NewStartJobCommand(jobID kernel.UUID, actor kernel.Actor) (StartJobCommand, error) {
	cmd := StartJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return StartJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartJobCommand) Validate() error {
	return c.guard.Validate(ErrStartJobCommandIsNotConstructed)
}

// JobID returns the id of the job being started.
func (c StartJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the translator starting the session.
func (c StartJobCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *StartJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *StartJobCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
