package queries

import (
	"context"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/ports"

	"gorm.io/gorm"
)

// GetPotentialJobsQueryHandler lists pending jobs a translator may accept.
// The pending pool comes from the database; per-job eligibility is delegated
// to the matching collaborator.
type GetPotentialJobsQueryHandler struct {
	db          *gorm.DB
	eligibility ports.EligibilityProvider
}

// NewGetPotentialJobsQueryHandler creates a handler for potential-job queries.
func NewGetPotentialJobsQueryHandler(
	db *gorm.DB,
	eligibility ports.EligibilityProvider,
) GetPotentialJobsQueryHandler {
	return GetPotentialJobsQueryHandler{db: db, eligibility: eligibility}
}

// Handle executes the query. Pending jobs the translator is not eligible for
// are filtered out of the listing, oldest first so stale jobs surface.
func (h GetPotentialJobsQueryHandler) Handle(
	ctx context.Context,
	query GetPotentialJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE status = ?
		ORDER BY created_at
	`, int(job.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]JobResponse, 0)
	for rows.Next() {
		resp, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	potential := make([]JobResponse, 0, len(pending))
	for _, resp := range pending {
		eligible, eligErr := h.eligibility.IsEligible(ctx, query.TranslatorID(), resp.ID)
		if eligErr != nil {
			return nil, eligErr
		}
		if eligible {
			potential = append(potential, resp)
		}
	}

	return potential, nil
}
