package commands

import (
	"errors"

	"booking/internal/pkg/guard"
)

var ErrRebroadcastPendingJobsCommandIsNotConstructed = errors.New(
	"RebroadcastPendingJobsCommand must be created via NewRebroadcastPendingJobsCommand constructor",
)

// RebroadcastPendingJobsCommand pushes a fresh alert for every job still
// waiting for a translator. The scheduler issues it periodically so pending
// jobs do not go stale.
type RebroadcastPendingJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewRebroadcastPendingJobsCommand creates a rebroadcast command.
func NewRebroadcastPendingJobsCommand() (RebroadcastPendingJobsCommand, error) {
	return RebroadcastPendingJobsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RebroadcastPendingJobsCommand) Validate() error {
	return c.guard.Validate(ErrRebroadcastPendingJobsCommandIsNotConstructed)
}
