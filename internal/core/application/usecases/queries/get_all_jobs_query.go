package queries

import (
	"errors"

	"booking/internal/core/domain/model/job"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrGetAllJobsQueryIsNotConstructed = errors.New(
	"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// GetAllJobsQuery retrieves every job in the system, newest first. Reserved
// for admin and superadmin callers; the boundary enforces the role check.
type GetAllJobsQuery struct { //nolint:recvcheck //using for validation
	status   *job.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetAllJobsQuery creates a privileged listing query. Pages are 1-based;
// a non-positive pageSize falls back to the default.
func NewGetAllJobsQuery(status *job.Status, page, pageSize int) (GetAllJobsQuery, error) {
	query := GetAllJobsQuery{guard: guard.NewConstructorGuard()}

	if err := query.setStatus(status); err != nil {
		return GetAllJobsQuery{}, err
	}
	if err := query.setPage(page); err != nil {
		return GetAllJobsQuery{}, err
	}
	if err := query.setPageSize(pageSize); err != nil {
		return GetAllJobsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetAllJobsQuery) Status() *job.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetAllJobsQuery) Page() int {
	return q.page
}

// PageSize returns the number of jobs per page.
func (q GetAllJobsQuery) PageSize() int {
	return q.pageSize
}

func (q *GetAllJobsQuery) setStatus(status *job.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	q.status = status
	return nil
}

func (q *GetAllJobsQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	q.page = page
	return nil
}

func (q *GetAllJobsQuery) setPageSize(pageSize int) error {
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
