package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"
)

// ErrJobAlreadyAssigned is returned when a translator loses the acceptance
// race: another translator committed the claim first. The job is unchanged
// for the loser.
var ErrJobAlreadyAssigned = errors.New("job already assigned to another translator")

// AcceptJobCommandHandler resolves the acceptance race for a pending job.
// The claim is committed through a conditional status update: the write only
// applies while the job is still pending, so exactly one of N concurrent
// translators wins and the rest observe ErrJobAlreadyAssigned.
//
// Example:
//
//	handler := NewAcceptJobCommandHandler(uowFactory, dispatcher, logger)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrJobAlreadyAssigned):
//	    // lost the race, job state unchanged
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such job
//	case err != nil:
//	    // storage or validation failure
//	default:
//	    // this translator owns the job now
//	}
type AcceptJobCommandHandler struct {
	uowFactory JobUoWFactory
	dispatcher services.NotificationDispatcher
	logger     *slog.Logger
}

// NewAcceptJobCommandHandler creates a handler for job acceptance operations.
func NewAcceptJobCommandHandler(
	uowFactory JobUoWFactory,
	dispatcher services.NotificationDispatcher,
	logger *slog.Logger,
) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes the acceptance command.
// A job that is already assigned or in progress reports the lost race; any
// other non-pending status is an invalid transition. After the claim commits,
// the winning translator is sent an SMS confirmation; delivery failure does
// not undo the claim.
func (h AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) error {
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

	claimed, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = claimed.Accept(cmd.Actor().ID(), time.Now().UTC()); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) && claimed.Status().RequiresTranslator() {
			return ErrJobAlreadyAssigned
		}
		return err
	}

	if err = jobRepo.Update(ctx, claimed, job.Pending); err != nil {
		if errors.Is(err, ports.ErrConcurrentStatusChange) {
			return ErrJobAlreadyAssigned
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	translatorID := cmd.Actor().ID()
	if smsErr := h.dispatcher.NotifySMS(ctx, jobAlert(claimed, eventAccepted), translatorID); smsErr != nil {
		h.logger.WarnContext(ctx, "acceptance confirmation failed",
			"job_id", claimed.ID().String(), "translator_id", translatorID.String(), "error", smsErr)
	}

	return nil
}
