package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserJobsQueryHandler retrieves a user's job read models from the database.
type GetUserJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserJobsQueryHandler creates a handler for per-user job listings.
func NewGetUserJobsQueryHandler(db *gorm.DB) GetUserJobsQueryHandler {
	return GetUserJobsQueryHandler{db: db}
}

// Handle executes the query. The user matches on either side of the job:
// as the booking customer or as the assigned translator.
func (h GetUserJobsQueryHandler) Handle(
	ctx context.Context,
	query GetUserJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE (customer_id = ? OR translator_id = ?)`
	args := []any{query.UserID().Bytes(), query.UserID().Bytes()}

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, int(*status))
	}
	sql += ` ORDER BY created_at DESC`

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
