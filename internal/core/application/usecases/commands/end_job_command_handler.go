package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/job"
)

// EndJobCommandHandler completes an in-progress job, stamping the completion
// time and the measured session duration.
type EndJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewEndJobCommandHandler creates a handler for session end operations.
func NewEndJobCommandHandler(uowFactory JobUoWFactory) EndJobCommandHandler {
	return EndJobCommandHandler{uowFactory: uowFactory}
}

// Handle processes the end command.
// Valid only from in-progress; any other status reports an
// InvalidTransitionError and leaves the job unchanged.
func (h EndJobCommandHandler) Handle(ctx context.Context, cmd EndJobCommand) error {
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

	ended, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = ended.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, ended, job.InProgress); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
