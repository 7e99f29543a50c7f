// Package distance provides the telemetry record associated with a job.
// Distance records are independent of the job lifecycle: they are created
// lazily on the first telemetry report and overwritten on each subsequent
// report (last-write-wins).
package distance

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// ErrDistanceIsNotConstructed is returned when a Distance instance was not
// created through NewDistance or RestoreDistance.
var ErrDistanceIsNotConstructed = errors.New(
	"Distance must be created via NewDistance or RestoreDistance constructor")

// Distance is the per-job telemetry record: a travelled distance and the
// travel time reported by the feed. Exactly one record exists per job id.
type Distance struct {
	// jobID keys the record to its job
	jobID kernel.UUID

	// value is the reported distance, unit-agnostic
	value float64

	// duration is the reported travel time
	duration time.Duration

	// isConstructed ensures the record was created via a constructor
	isConstructed bool
}

// NewDistance creates a telemetry record for the given job.
// Distance must be non-negative and duration must not be negative.
func NewDistance(jobID kernel.UUID, value float64, duration time.Duration) (*Distance, error) {
	d := &Distance{isConstructed: true}

	if err := errors.Join(
		d.setJobID(jobID),
		d.setValue(value),
		d.setDuration(duration),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDistance reconstructs a telemetry record from persistence.
func RestoreDistance(jobID kernel.UUID, value float64, duration time.Duration) (*Distance, error) {
	return NewDistance(jobID, value, duration)
}

// Validate ensures the record was properly constructed.
func (d *Distance) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDistanceIsNotConstructed
	}
	return nil
}

// JobID returns the id of the job this record belongs to.
func (d *Distance) JobID() kernel.UUID {
	return d.jobID
}

// Value returns the reported distance.
func (d *Distance) Value() float64 {
	return d.value
}

// Duration returns the reported travel time.
func (d *Distance) Duration() time.Duration {
	return d.duration
}

func (d *Distance) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	d.jobID = jobID
	return nil
}

func (d *Distance) setValue(value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%f is negative", value))
	}
	d.value = value
	return nil
}

func (d *Distance) setDuration(duration time.Duration) error {
	if duration < 0 {
		return errs.NewValueIsInvalidErrorWithCause("time is invalid",
			fmt.Errorf("%s is negative", duration))
	}
	d.duration = duration
	return nil
}
