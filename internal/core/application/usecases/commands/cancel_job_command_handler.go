package commands

import (
	"context"
	"time"
)

// CancelJobCommandHandler cancels a job from any of its active states.
//
// Race rule against a concurrent accept: the cancel transitions from
// whatever status the accept left committed. An accept that wins the race
// leaves the job assigned, and the cancel then proceeds as a valid
// assigned-to-cancelled transition; the conditional update ensures a cancel
// never overwrites a transition it did not read.
type CancelJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCancelJobCommandHandler creates a handler for job cancellation.
func NewCancelJobCommandHandler(uowFactory JobUoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancellation command.
// Valid from pending, assigned, and in-progress; terminal jobs report an
// InvalidTransitionError and are left unchanged.
func (h CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	cancelled, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	previous := cancelled.Status()
	if err = cancelled.Cancel(cmd.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, cancelled, previous); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
