package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrResendNotificationsCommandIsNotConstructed = errors.New(
		"ResendNotificationsCommand must be created via NewResendNotificationsCommand constructor",
	)
	ErrNoChannelSelected = errors.New("at least one notification channel must be selected")
)

// ResendNotificationsCommand re-dispatches notifications for a job.
// Push fans out to all currently eligible translators (the broadcast
// wildcard); SMS targets the assigned translator. Each selected channel
// reports its outcome independently.
type ResendNotificationsCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	push  bool
	sms   bool

	guard guard.ConstructorGuard
}

// NewResendNotificationsCommand creates a resend command for the selected
// channels. At least one channel must be selected.
func NewResendNotificationsCommand(jobID kernel.UUID, push, sms bool) (ResendNotificationsCommand, error) {
	cmd := ResendNotificationsCommand{
		push:  push,
		sms:   sms,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return ResendNotificationsCommand{}, err
	}
	if !push && !sms {
		return ResendNotificationsCommand{}, ErrNoChannelSelected
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrResendNotificationsCommandIsNotConstructed)
}

// JobID returns the id of the job whose notifications are re-sent.
func (c ResendNotificationsCommand) JobID() kernel.UUID {
	return c.jobID
}

// Push reports whether the push channel is selected.
func (c ResendNotificationsCommand) Push() bool {
	return c.push
}

// SMS reports whether the SMS channel is selected.
func (c ResendNotificationsCommand) SMS() bool {
	return c.sms
}

func (c *ResendNotificationsCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
