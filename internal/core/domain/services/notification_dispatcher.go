package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
)

// ErrDeliveryFailed is the sentinel for per-channel delivery failures.
// It classifies DeliveryError for errors.Is checks.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// defaultChannelTimeout bounds a single channel call when no timeout is configured.
const defaultChannelTimeout = 5 * time.Second

// DeliveryError reports a failed send on one notification channel.
// A delivery failure is never fatal to the operation that triggered it.
type DeliveryError struct {
	Channel string
	Cause   error
}

// NewDeliveryError wraps a channel failure with the channel name.
func NewDeliveryError(channel string, cause error) *DeliveryError {
	return &DeliveryError{Channel: channel, Cause: cause}
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %s channel: %s", ErrDeliveryFailed, e.Channel, e.Cause)
}

func (e *DeliveryError) Unwrap() error {
	return ErrDeliveryFailed
}

// ChannelSet selects which channels a combined dispatch uses.
type ChannelSet struct {
	Push bool
	SMS  bool
}

// DispatchReport carries the independent per-channel outcome of a combined
// dispatch. A nil error on an attempted channel means the send succeeded; a
// channel that was not selected reports neither success nor failure.
type DispatchReport struct {
	PushAttempted bool
	PushErr       error
	SMSAttempted  bool
	SMSErr        error
}

// NotificationDispatcher is a domain service that fans job notifications out
// to translators over push and SMS.
//
// Key responsibilities:
//   - Issuing each channel call independently: a push failure never blocks
//     or rolls back an SMS attempt, and vice versa
//   - Bounding every external channel call with a timeout so a slow provider
//     cannot hang the coordinator
//   - Reporting outcomes per channel instead of aggregating them into a
//     single error
//
// The dispatcher is invoked strictly after the state transition that
// triggered it has committed; delivery is eventual, not transactional.
//
// Example usage:
//
//	dispatcher := services.NewNotificationDispatcher(push, sms, 3*time.Second)
//	report := dispatcher.Dispatch(ctx, alert, pool, &translatorID, services.ChannelSet{Push: true, SMS: true})
//	if report.PushErr != nil {
//	    // push failed; SMS outcome is in report.SMSErr independently
//	}
type NotificationDispatcher struct {
	push    ports.PushGateway
	sms     ports.SMSGateway
	timeout time.Duration
}

// NewNotificationDispatcher creates a dispatcher over the given channel
// gateways. A non-positive timeout falls back to the default channel timeout.
func NewNotificationDispatcher(
	push ports.PushGateway,
	sms ports.SMSGateway,
	timeout time.Duration,
) NotificationDispatcher {
	if timeout <= 0 {
		timeout = defaultChannelTimeout
	}
	return NotificationDispatcher{
		push:    push,
		sms:     sms,
		timeout: timeout,
	}
}

// NotifyTranslators pushes the alert to the given translator pool.
// An empty pool is a successful no-op: there is nobody to notify.
// Failures, including timeouts, are reported as a DeliveryError.
func (d NotificationDispatcher) NotifyTranslators(
	ctx context.Context,
	alert ports.JobAlert,
	recipients []kernel.UUID,
) error {
	if len(recipients) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.push.SendJobAlert(ctx, alert, recipients); err != nil {
		return NewDeliveryError("push", err)
	}
	return nil
}

// NotifySMS sends the alert to a single translator over SMS.
// Failures, including timeouts, are reported as a DeliveryError.
func (d NotificationDispatcher) NotifySMS(
	ctx context.Context,
	alert ports.JobAlert,
	translatorID kernel.UUID,
) error {
	if err := translatorID.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.sms.SendJobSMS(ctx, alert, translatorID); err != nil {
		return NewDeliveryError("sms", err)
	}
	return nil
}

// Dispatch issues the selected channels independently and reports each
// outcome on its own slot. The SMS channel targets a single translator;
// selecting SMS without a target records a DeliveryError for that channel
// while the push outcome stands on its own.
func (d NotificationDispatcher) Dispatch(
	ctx context.Context,
	alert ports.JobAlert,
	recipients []kernel.UUID,
	smsTarget *kernel.UUID,
	channels ChannelSet,
) DispatchReport {
	var report DispatchReport

	if channels.Push {
		report.PushAttempted = true
		report.PushErr = d.NotifyTranslators(ctx, alert, recipients)
	}

	if channels.SMS {
		report.SMSAttempted = true
		if smsTarget == nil {
			report.SMSErr = NewDeliveryError("sms", errors.New("no translator to send to"))
		} else {
			report.SMSErr = d.NotifySMS(ctx, alert, *smsTarget)
		}
	}

	return report
}
