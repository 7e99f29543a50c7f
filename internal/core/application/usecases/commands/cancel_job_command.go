package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand cancels a job on behalf of a customer, translator, or
// admin. The cancelling actor's role is recorded on the job for auditing;
// the semantics are identical regardless of who cancels.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a command to cancel a job.
func NewCancelJobCommand(jobID kernel.UUID, actor kernel.Actor) (CancelJobCommand, error) {
	cmd := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return CancelJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

// JobID returns the id of the job being cancelled.
func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns who is cancelling.
func (c CancelJobCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CancelJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *CancelJobCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
