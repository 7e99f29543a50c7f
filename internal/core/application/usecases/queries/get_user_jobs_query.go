package queries

import (
	"errors"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetUserJobsQueryIsNotConstructed = errors.New(
	"GetUserJobsQuery must be created via NewGetUserJobsQuery constructor",
)

// GetUserJobsQuery retrieves the jobs a user is party to, as customer or as
// assigned translator, newest first. An optional status filter narrows the
// listing.
type GetUserJobsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	status *job.Status

	guard guard.ConstructorGuard
}

// NewGetUserJobsQuery creates a query for a user's jobs.
// A nil status means no status filter.
func NewGetUserJobsQuery(userID kernel.UUID, status *job.Status) (GetUserJobsQuery, error) {
	query := GetUserJobsQuery{guard: guard.NewConstructorGuard()}

	if err := query.setUserID(userID); err != nil {
		return GetUserJobsQuery{}, err
	}
	if err := query.setStatus(status); err != nil {
		return GetUserJobsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserJobsQueryIsNotConstructed)
}

// UserID returns the id of the user whose jobs are listed.
func (q GetUserJobsQuery) UserID() kernel.UUID {
	return q.userID
}

// Status returns the optional status filter.
func (q GetUserJobsQuery) Status() *job.Status {
	return q.status
}

func (q *GetUserJobsQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}

func (q *GetUserJobsQuery) setStatus(status *job.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	q.status = status
	return nil
}
