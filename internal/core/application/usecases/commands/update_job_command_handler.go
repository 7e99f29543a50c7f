package commands

import (
	"context"
	"time"
)

// UpdateJobCommandHandler replaces a job's editable booking details.
// The conditional update keys on the status the edit was read against, so an
// edit can never resurrect details over a concurrent lifecycle transition.
type UpdateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewUpdateJobCommandHandler creates a handler for booking detail edits.
func NewUpdateJobCommandHandler(uowFactory JobUoWFactory) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{uowFactory: uowFactory}
}

// Handle processes the edit command.
func (h UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) error {
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

	edited, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = edited.UpdateDetails(cmd.Title(), cmd.Description(), time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, edited, edited.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
