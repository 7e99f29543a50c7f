package queries

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrGetJobsHistoryQueryIsNotConstructed = errors.New(
	"GetJobsHistoryQuery must be created via NewGetJobsHistoryQuery constructor",
)

// GetJobsHistoryQuery retrieves a user's finished jobs joined with their
// telemetry records, paginated and newest first.
type GetJobsHistoryQuery struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetJobsHistoryQuery creates a history query for a user. Pages are
// 1-based; a non-positive pageSize falls back to the default.
func NewGetJobsHistoryQuery(userID kernel.UUID, page, pageSize int) (GetJobsHistoryQuery, error) {
	query := GetJobsHistoryQuery{guard: guard.NewConstructorGuard()}

	if err := query.setUserID(userID); err != nil {
		return GetJobsHistoryQuery{}, err
	}
	if err := query.setPage(page); err != nil {
		return GetJobsHistoryQuery{}, err
	}
	if err := query.setPageSize(pageSize); err != nil {
		return GetJobsHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobsHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetJobsHistoryQueryIsNotConstructed)
}

// UserID returns the id of the user whose history is listed.
func (q GetJobsHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

// Page returns the 1-based page number.
func (q GetJobsHistoryQuery) Page() int {
	return q.page
}

// PageSize returns the number of jobs per page.
func (q GetJobsHistoryQuery) PageSize() int {
	return q.pageSize
}

func (q *GetJobsHistoryQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}

func (q *GetJobsHistoryQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	q.page = page
	return nil
}

func (q *GetJobsHistoryQuery) setPageSize(pageSize int) error {
	if pageSize <= 0 {
		q.pageSize = defaultPageSize
		return nil
	}
	if pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}
	q.pageSize = pageSize
	return nil
}

// JobHistoryResponse is the read model for one history entry: the job plus
// its telemetry record when one was reported.
type JobHistoryResponse struct {
	Job        JobResponse
	Distance   *float64
	TravelTime *time.Duration
}
