package commands

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// CreateJobCommandHandler handles the business logic for booking a job.
// Persists the job in pending status and, once the transaction has
// committed, notifies all currently eligible translators that a new job is
// available.
//
// Example:
//
//	handler := NewCreateJobCommandHandler(uowFactory, dispatcher, eligibility, logger)
//	cmd, _ := NewCreateJobCommand(kernel.NewUUID(), actor, "Asylum interview", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	// Job is booked; eligible translators have been pushed a notification.
type CreateJobCommandHandler struct {
	uowFactory  JobUoWFactory
	dispatcher  services.NotificationDispatcher
	eligibility ports.EligibilityProvider
	logger      *slog.Logger
}

// NewCreateJobCommandHandler creates a handler for job booking operations.
func NewCreateJobCommandHandler(
	uowFactory JobUoWFactory,
	dispatcher services.NotificationDispatcher,
	eligibility ports.EligibilityProvider,
	logger *slog.Logger,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory:  uowFactory,
		dispatcher:  dispatcher,
		eligibility: eligibility,
		logger:      logger,
	}
}

// Handle processes the booking command.
// The booking commits before any notification is attempted; notification
// failure never rolls the booking back.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newJob, err := job.NewJob(
		cmd.JobID(),
		cmd.Actor().ID(),
		cmd.Title(),
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyEligible(ctx, h.dispatcher, h.eligibility, h.logger, newJob, eventBooked)
	return nil
}
