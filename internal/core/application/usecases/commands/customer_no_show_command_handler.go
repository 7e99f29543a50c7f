package commands

import (
	"context"
	"time"
)

// CustomerNoShowCommandHandler transitions an accepted job to the no-show
// terminal status when the customer did not call or appear.
type CustomerNoShowCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCustomerNoShowCommandHandler creates a handler for no-show recording.
func NewCustomerNoShowCommandHandler(uowFactory JobUoWFactory) CustomerNoShowCommandHandler {
	return CustomerNoShowCommandHandler{uowFactory: uowFactory}
}

// Handle processes the no-show command.
// Valid from assigned and in-progress; other statuses report an
// InvalidTransitionError.
func (h CustomerNoShowCommandHandler) Handle(ctx context.Context, cmd CustomerNoShowCommand) error {
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

	missed, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	previous := missed.Status()
	if err = missed.MarkNoShow(time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, missed, previous); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
