package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery retrieves a single job by its identifier, including the
// assigned translator reference when one exists.
type GetJobQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a query for a single job.
func NewGetJobQuery(jobID kernel.UUID) (GetJobQuery, error) {
	query := GetJobQuery{guard: guard.NewConstructorGuard()}
	if err := query.setJobID(jobID); err != nil {
		return GetJobQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

// JobID returns the identifier of the requested job.
func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}

func (q *GetJobQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	q.jobID = jobID
	return nil
}
