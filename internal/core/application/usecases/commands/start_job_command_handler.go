package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/job"
)

// StartJobCommandHandler transitions an assigned job into its in-progress
// session state. The conditional update serializes the start against any
// concurrent cancel or no-show on the same job.
type StartJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewStartJobCommandHandler creates a handler for session start operations.
func NewStartJobCommandHandler(uowFactory JobUoWFactory) StartJobCommandHandler {
	return StartJobCommandHandler{uowFactory: uowFactory}
}

// Handle processes the session start command.
// Fails with an InvalidTransitionError unless the job is assigned, and with
// job.ErrTranslatorMismatch when someone other than the assignee starts it.
func (h StartJobCommandHandler) Handle(ctx context.Context, cmd StartJobCommand) error {
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

	started, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = started.Start(cmd.Actor().ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, started, job.Assigned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
