package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand replaces a job's customer-editable fields (title and
// description). Protected fields — status, assignment, audit markers — are
// not reachable through this command.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	actor       kernel.Actor
	title       string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateJobCommand creates a command to edit a job's booking details.
func NewUpdateJobCommand(
	jobID kernel.UUID,
	actor kernel.Actor,
	title, description string,
) (UpdateJobCommand, error) {
	cmd := UpdateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
		cmd.setTitle(title),
	); err != nil {
		return UpdateJobCommand{}, err
	}
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

// JobID returns the id of the job being edited.
func (c UpdateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns who is editing the job.
func (c UpdateJobCommand) Actor() kernel.Actor {
	return c.actor
}

// Title returns the replacement title.
func (c UpdateJobCommand) Title() string {
	return c.title
}

// Description returns the replacement description.
func (c UpdateJobCommand) Description() string {
	return c.description
}

func (c *UpdateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *UpdateJobCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateJobCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}
