package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrDistanceFeedCommandIsNotConstructed = errors.New(
	"DistanceFeedCommand must be created via NewDistanceFeedCommand constructor",
)

// DistanceFeedCommand carries one telemetry/admin-override report for a job.
// Nil fields were not supplied by the feed and are left untouched. The audit
// flags arrive already normalized into the two-value kernel.Flag domain; the
// boundary performs that normalization exactly once.
//
// The report splits into two independent field groups:
//   - distance/travel time, upserting the per-job Distance record
//   - session time, admin comment, and the three audit flags, written onto
//     the job record itself
type DistanceFeedCommand struct { //nolint:recvcheck //using for validation
	jobID           kernel.UUID
	distance        *float64
	travelTime      *time.Duration
	sessionTime     *time.Duration
	adminComments   *string
	flagged         kernel.Flag
	manuallyHandled kernel.Flag
	byAdmin         kernel.Flag

	guard guard.ConstructorGuard
}

// NewDistanceFeedCommand creates a telemetry report command.
func NewDistanceFeedCommand(
	jobID kernel.UUID,
	distanceValue *float64,
	travelTime *time.Duration,
	sessionTime *time.Duration,
	adminComments *string,
	flagged, manuallyHandled, byAdmin kernel.Flag,
) (DistanceFeedCommand, error) {
	cmd := DistanceFeedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		flagged.Validate(),
		manuallyHandled.Validate(),
		byAdmin.Validate(),
	); err != nil {
		return DistanceFeedCommand{}, err
	}

	cmd.distance = distanceValue
	cmd.travelTime = travelTime
	cmd.sessionTime = sessionTime
	cmd.adminComments = adminComments
	cmd.flagged = flagged
	cmd.manuallyHandled = manuallyHandled
	cmd.byAdmin = byAdmin

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DistanceFeedCommand) Validate() error {
	return c.guard.Validate(ErrDistanceFeedCommandIsNotConstructed)
}

// JobID returns the id of the reported job.
func (c DistanceFeedCommand) JobID() kernel.UUID {
	return c.jobID
}

// Distance returns the reported distance, or nil if not supplied.
func (c DistanceFeedCommand) Distance() *float64 {
	return c.distance
}

// TravelTime returns the reported travel time, or nil if not supplied.
func (c DistanceFeedCommand) TravelTime() *time.Duration {
	return c.travelTime
}

// HasTelemetry reports whether the distance-record group was supplied.
func (c DistanceFeedCommand) HasTelemetry() bool {
	return c.distance != nil || c.travelTime != nil
}

// HasOverrides reports whether the job override group carries anything to
// write: a session time, an admin comment, or at least one raised flag.
func (c DistanceFeedCommand) HasOverrides() bool {
	return c.sessionTime != nil ||
		c.adminComments != nil ||
		c.flagged.IsSet() ||
		c.manuallyHandled.IsSet() ||
		c.byAdmin.IsSet()
}

// Overrides assembles the job override field set. All three flags are
// written when the group triggers, so a normalized "no" clears a previously
// raised marker.
func (c DistanceFeedCommand) Overrides() job.Overrides {
	flagged := c.flagged
	manuallyHandled := c.manuallyHandled
	byAdmin := c.byAdmin
	return job.Overrides{
		SessionTime:     c.sessionTime,
		AdminComments:   c.adminComments,
		Flagged:         &flagged,
		ManuallyHandled: &manuallyHandled,
		ByAdmin:         &byAdmin,
	}
}

func (c *DistanceFeedCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
