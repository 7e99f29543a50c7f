package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrStoreJobEmailCommandIsNotConstructed = errors.New(
		"StoreJobEmailCommand must be created via NewStoreJobEmailCommand constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// StoreJobEmailCommand records the contact email for an immediate job.
// The boundary layer validates the email format before constructing the
// command; the core only requires that it is present.
type StoreJobEmailCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	email string

	guard guard.ConstructorGuard
}

// NewStoreJobEmailCommand creates a command to record an immediate-job email.
func NewStoreJobEmailCommand(jobID kernel.UUID, email string) (StoreJobEmailCommand, error) {
	cmd := StoreJobEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setEmail(email),
	); err != nil {
		return StoreJobEmailCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StoreJobEmailCommand) Validate() error {
	return c.guard.Validate(ErrStoreJobEmailCommandIsNotConstructed)
}

// JobID returns the id of the job the email belongs to.
func (c StoreJobEmailCommand) JobID() kernel.UUID {
	return c.jobID
}

// Email returns the validated contact email.
func (c StoreJobEmailCommand) Email() string {
	return c.email
}

func (c *StoreJobEmailCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *StoreJobEmailCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}
