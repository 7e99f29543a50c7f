package ports

import (
	"context"

	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"
)

// DistanceRepository defines the persistence contract for per-job telemetry
// records. Records are keyed by job id, created lazily on the first report,
// and fully replaced on each subsequent report (last-write-wins).
type DistanceRepository interface {
	// Upsert creates or replaces the telemetry record for its job.
	Upsert(ctx context.Context, record *distance.Distance) error

	// GetByJobID retrieves the telemetry record for a job.
	// Returns an errs.ObjectNotFoundError when no report has arrived yet.
	GetByJobID(ctx context.Context, jobID kernel.UUID) (*distance.Distance, error)
}
