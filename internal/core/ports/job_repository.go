// Package ports defines the contracts between the booking core and its
// infrastructure: repositories, the unit of work, notification gateways, and
// the translator eligibility collaborator. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
)

// ErrConcurrentStatusChange is returned by JobRepository.Update when the
// conditional status update matched no row because another writer committed a
// different status first. Callers translate it into the domain outcome for
// their operation (e.g. the lost acceptance race).
var ErrConcurrentStatusChange = errors.New("job status changed concurrently")

// JobRepository defines the persistence contract for job aggregates.
// It is the authoritative record of jobs; lifecycle writers serialize their
// mutations through the conditional Update below, which is the per-job
// compare-and-set that resolves the acceptance race.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists a lifecycle mutation conditionally: the write only
	// applies if the stored status still equals expectedStatus (an atomic
	// compare-and-set on the status column).
	//
	// Returns ErrConcurrentStatusChange when another writer got there first,
	// or an errs.ObjectNotFoundError when the job does not exist. At most one
	// of N concurrent writers with the same expectedStatus can succeed.
	Update(ctx context.Context, aggregate *job.Job, expectedStatus job.Status) error

	// UpdateOverrides partially updates the administrative override columns
	// of a job, leaving status and assignment columns untouched so it cannot
	// corrupt a concurrent lifecycle write. Absent fields are not written.
	UpdateOverrides(ctx context.Context, id kernel.UUID, overrides job.Overrides) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllPending retrieves all jobs awaiting acceptance, ordered by
	// booking time. Used for notification fan-out and potential-job listings.
	GetAllPending(ctx context.Context) ([]*job.Job, error)
}
