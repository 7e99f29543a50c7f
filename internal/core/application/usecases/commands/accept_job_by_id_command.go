package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrAcceptJobByIDCommandIsNotConstructed = errors.New(
	"AcceptJobByIDCommand must be created via NewAcceptJobByIDCommand constructor",
)

// AcceptJobByIDCommand claims a pending job whose id was supplied directly by
// the caller rather than resolved from a batch payload. The acceptance
// contract is identical to AcceptJobCommand: at most one translator wins.
type AcceptJobByIDCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewAcceptJobByIDCommand creates a direct-id acceptance command.
func NewAcceptJobByIDCommand(jobID kernel.UUID, actor kernel.Actor) (AcceptJobByIDCommand, error) {
	cmd := AcceptJobByIDCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return AcceptJobByIDCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobByIDCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobByIDCommandIsNotConstructed)
}

// JobID returns the id of the job being claimed.
func (c AcceptJobByIDCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the accepting translator.
func (c AcceptJobByIDCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AcceptJobByIDCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *AcceptJobByIDCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
