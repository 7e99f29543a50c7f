package commands

import (
	"context"
	"log/slog"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// Notification event names carried in ports.JobAlert.Event.
const (
	eventBooked   = "booked"
	eventAccepted = "accepted"
	eventReopened = "reopened"
	eventResend   = "resend"
)

// jobAlert snapshots a job into the ephemeral notification payload.
func jobAlert(j *job.Job, event string) ports.JobAlert {
	return ports.JobAlert{
		JobID:       j.ID(),
		Title:       j.Title(),
		Description: j.Description(),
		Status:      j.Status().String(),
		Event:       event,
	}
}

// notifyEligible fans a push alert out to every translator currently eligible
// for the job. It runs strictly after the triggering transition has
// committed; failures are logged and never affect the committed state.
func notifyEligible(
	ctx context.Context,
	dispatcher services.NotificationDispatcher,
	eligibility ports.EligibilityProvider,
	logger *slog.Logger,
	j *job.Job,
	event string,
) {
	recipients, err := eligibility.EligibleTranslators(ctx, j.ID())
	if err != nil {
		logger.WarnContext(ctx, "could not resolve eligible translators",
			"job_id", j.ID().String(), "error", err)
		return
	}

	if err := dispatcher.NotifyTranslators(ctx, jobAlert(j, event), recipients); err != nil {
		logger.WarnContext(ctx, "push fan-out failed",
			"job_id", j.ID().String(), "event", event, "error", err)
	}
}
