package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateJobCommand represents a customer's request to book a job.
// The job is created in pending status tied to the booking actor; eligible
// translators are notified once the booking has committed.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobCommand(jobID, actor, "Court hearing, Swedish", "2h on-site")
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory, dispatcher, eligibility, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	actor       kernel.Actor
	title       string
	description string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to book a new job.
// Validates the job id, the booking actor, and that the title is present.
func NewCreateJobCommand(
	jobID kernel.UUID,
	actor kernel.Actor,
	title, description string,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setActor(actor),
		cmd.setTitle(title),
	); err != nil {
		return CreateJobCommand{}, err
	}
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the booking customer.
func (c CreateJobCommand) Actor() kernel.Actor {
	return c.actor
}

// Title returns the booking title.
func (c CreateJobCommand) Title() string {
	return c.title
}

// Description returns the booking description.
func (c CreateJobCommand) Description() string {
	return c.description
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateJobCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}
