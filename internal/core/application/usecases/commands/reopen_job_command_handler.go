package commands

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// ReopenJobCommandHandler returns a terminal job to the pending pool and
// re-notifies eligible translators that it is available again.
type ReopenJobCommandHandler struct {
	uowFactory  JobUoWFactory
	dispatcher  services.NotificationDispatcher
	eligibility ports.EligibilityProvider
	logger      *slog.Logger
}

// NewReopenJobCommandHandler creates a handler for reopen operations.
func NewReopenJobCommandHandler(
	uowFactory JobUoWFactory,
	dispatcher services.NotificationDispatcher,
	eligibility ports.EligibilityProvider,
	logger *slog.Logger,
) ReopenJobCommandHandler {
	return ReopenJobCommandHandler{
		uowFactory:  uowFactory,
		dispatcher:  dispatcher,
		eligibility: eligibility,
		logger:      logger,
	}
}

// Handle processes the reopen command.
// Legal only from a terminal status (completed, cancelled, no-show); the
// reopened job re-enters pending with its assignment cleared. The reopen
// commits before translators are notified.
func (h ReopenJobCommandHandler) Handle(ctx context.Context, cmd ReopenJobCommand) error {
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

	reopened, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	previous := reopened.Status()
	if err = reopened.Reopen(time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, reopened, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyEligible(ctx, h.dispatcher, h.eligibility, h.logger, reopened, eventReopened)
	return nil
}
