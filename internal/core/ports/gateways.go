package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
)

// JobAlert is the snapshot of a job carried by a notification.
// It is ephemeral: produced for a single dispatch and never persisted.
type JobAlert struct {
	JobID       kernel.UUID
	Title       string
	Description string
	Status      string

	// Event names what happened to the job ("booked", "reopened", "resend").
	Event string
}

// PushGateway delivers push notifications to translator devices.
// Implementations must apply a bounded timeout; a timed-out send is reported
// as an error, never as a hang.
type PushGateway interface {
	// SendJobAlert pushes the alert to every translator in recipients.
	SendJobAlert(ctx context.Context, alert JobAlert, recipients []kernel.UUID) error
}

// SMSGateway delivers a single SMS to one translator.
// Implementations must apply a bounded timeout; a timed-out send is reported
// as an error, never as a hang.
type SMSGateway interface {
	// SendJobSMS sends the alert to one translator's phone.
	SendJobSMS(ctx context.Context, alert JobAlert, translatorID kernel.UUID) error
}
