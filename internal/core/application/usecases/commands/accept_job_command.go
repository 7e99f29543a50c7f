package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand represents a translator's attempt to claim a pending job.
// At most one translator may win acceptance of a given job; all concurrent
// losers observe ErrJobAlreadyAssigned.
//
// Example:
//
//	cmd, err := NewAcceptJobCommand(jobID, translatorActor)
//	if err != nil {
//	    return err
//	}
//
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrJobAlreadyAssigned) {
//	    // another translator was faster
//	}
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command for a translator to accept a job.
func NewAcceptJobCommand(jobID kernel.UUID, actor kernel.Actor) (AcceptJobCommand, error) {
	cmd := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the id of the job being claimed.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the accepting translator.
func (c AcceptJobCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
