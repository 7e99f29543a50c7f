package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrCustomerNoShowCommandIsNotConstructed = errors.New(
	"CustomerNoShowCommand must be created via NewCustomerNoShowCommand constructor",
)

// CustomerNoShowCommand records that the customer did not show up for an
// accepted job. The job ends in the no-show terminal status.
type CustomerNoShowCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerNoShowCommand creates a command to record a customer no-show.
func NewCustomerNoShowCommand(jobID kernel.UUID) (CustomerNoShowCommand, error) {
	cmd := CustomerNoShowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return CustomerNoShowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CustomerNoShowCommand) Validate() error {
	return c.guard.Validate(ErrCustomerNoShowCommandIsNotConstructed)
}

// JobID returns the id of the job the customer missed.
func (c CustomerNoShowCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *CustomerNoShowCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
