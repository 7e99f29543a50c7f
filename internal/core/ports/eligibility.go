package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
)

// EligibilityProvider is the external collaborator that knows which
// translators are qualified for a job. The matching algorithm itself is out
// of scope for the core; the coordinator only queries it.
type EligibilityProvider interface {
	// EligibleTranslators returns the ids of all translators currently
	// eligible for the given job. Used to resolve the broadcast wildcard
	// when fanning out notifications.
	EligibleTranslators(ctx context.Context, jobID kernel.UUID) ([]kernel.UUID, error)

	// IsEligible reports whether one translator is qualified for the job.
	// Used to filter potential-job listings.
	IsEligible(ctx context.Context, translatorID, jobID kernel.UUID) (bool, error)
}
