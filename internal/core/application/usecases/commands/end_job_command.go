package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrEndJobCommandIsNotConstructed = errors.New(
	"EndJobCommand must be created via NewEndJobCommand constructor",
)

// EndJobCommand ends an in-progress translation session, completing the job
// and stamping the completion time.
type EndJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndJobCommand creates a command to end a session.
func NewEndJobCommand(jobID kernel.UUID) (EndJobCommand, error) {
	cmd := EndJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return EndJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EndJobCommand) Validate() error {
	return c.guard.Validate(ErrEndJobCommandIsNotConstructed)
}

// JobID returns the id of the job being ended.
func (c EndJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *EndJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
