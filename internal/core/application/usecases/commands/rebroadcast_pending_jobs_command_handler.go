package commands

import (
	"context"
	"log/slog"

	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// RebroadcastPendingJobsCommandHandler re-announces every pending job to its
// eligible translator pool. Jobs keep their state; only notifications go out.
type RebroadcastPendingJobsCommandHandler struct {
	uowFactory  JobUoWFactory
	dispatcher  services.NotificationDispatcher
	eligibility ports.EligibilityProvider
	logger      *slog.Logger
}

// NewRebroadcastPendingJobsCommandHandler creates a handler for scheduled
// pending-job rebroadcasts.
func NewRebroadcastPendingJobsCommandHandler(
	uowFactory JobUoWFactory,
	dispatcher services.NotificationDispatcher,
	eligibility ports.EligibilityProvider,
	logger *slog.Logger,
) RebroadcastPendingJobsCommandHandler {
	return RebroadcastPendingJobsCommandHandler{
		uowFactory:  uowFactory,
		dispatcher:  dispatcher,
		eligibility: eligibility,
		logger:      logger,
	}
}

// Handle processes the rebroadcast command. A failed fan-out for one job is
// logged and never stops the sweep over the rest of the pending pool.
func (h RebroadcastPendingJobsCommandHandler) Handle(
	ctx context.Context,
	cmd RebroadcastPendingJobsCommand,
) error {
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

	pending, err := uow.JobRepository().GetAllPending(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, waiting := range pending {
		notifyEligible(ctx, h.dispatcher, h.eligibility, h.logger, waiting, eventResend)
	}
	return nil
}
