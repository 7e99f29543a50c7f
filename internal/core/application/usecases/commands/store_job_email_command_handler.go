package commands

import (
	"context"
	"time"
)

// StoreJobEmailCommandHandler records the immediate-job contact email on the
// job record.
type StoreJobEmailCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewStoreJobEmailCommandHandler creates a handler for email recording.
func NewStoreJobEmailCommandHandler(uowFactory JobUoWFactory) StoreJobEmailCommandHandler {
	return StoreJobEmailCommandHandler{uowFactory: uowFactory}
}

// Handle processes the email command.
func (h StoreJobEmailCommandHandler) Handle(ctx context.Context, cmd StoreJobEmailCommand) error {
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

	j, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = j.SetContactEmail(cmd.Email(), time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, j, j.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
