package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllJobsQueryHandler retrieves the full job listing for privileged callers.
type GetAllJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllJobsQueryHandler creates a handler for privileged job listings.
func NewGetAllJobsQueryHandler(db *gorm.DB) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{db: db}
}

// Handle executes the query with optional status filtering and pagination.
func (h GetAllJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAllJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + jobColumns + `
		FROM jobs`
	args := make([]any, 0, 3)

	if status := query.Status(); status != nil {
		sql += ` WHERE status = ?`
		args = append(args, int(*status))
	}
	sql += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]JobResponse, 0)
	for rows.Next() {
		resp, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
