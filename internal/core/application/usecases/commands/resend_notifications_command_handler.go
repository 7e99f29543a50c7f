package commands

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// ResendNotificationsCommandHandler re-issues notifications for an existing
// job without changing its state. Push goes to every translator currently
// eligible for the job; SMS goes to the assigned translator if there is one.
type ResendNotificationsCommandHandler struct {
	uowFactory  JobUoWFactory
	dispatcher  services.NotificationDispatcher
	eligibility ports.EligibilityProvider
}

// NewResendNotificationsCommandHandler creates a handler for notification
// resend operations.
func NewResendNotificationsCommandHandler(
	uowFactory JobUoWFactory,
	dispatcher services.NotificationDispatcher,
	eligibility ports.EligibilityProvider,
) ResendNotificationsCommandHandler {
	return ResendNotificationsCommandHandler{
		uowFactory:  uowFactory,
		dispatcher:  dispatcher,
		eligibility: eligibility,
	}
}

// Handle processes the resend command and reports the outcome of each
// selected channel independently. A failure on one channel never suppresses
// the attempt, or the result, of the other.
func (h ResendNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd ResendNotificationsCommand,
) (services.DispatchReport, error) {
	if err := cmd.Validate(); err != nil {
		return services.DispatchReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.DispatchReport{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return services.DispatchReport{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.DispatchReport{}, err
	}

	var recipients []kernel.UUID
	if cmd.Push() {
		recipients, err = h.eligibility.EligibleTranslators(ctx, target.ID())
		if err != nil {
			return services.DispatchReport{}, err
		}
	}

	report := h.dispatcher.Dispatch(ctx, jobAlert(target, eventResend), recipients,
		target.Translator(), services.ChannelSet{Push: cmd.Push(), SMS: cmd.SMS()})
	return report, nil
}
