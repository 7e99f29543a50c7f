package queries

import (
	"context"

	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobQueryHandler retrieves a single job read model from the database.
type GetJobQueryHandler struct {
	db *gorm.DB
}

// NewGetJobQueryHandler creates a handler for single-job queries.
func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle executes the query. A missing job surfaces as a typed not-found
// error for the boundary to map to its transport status.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (JobResponse, error) {
	if err := query.Validate(); err != nil {
		return JobResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = ?
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return JobResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return JobResponse{}, err
		}
		return JobResponse{}, errs.NewObjectNotFoundError("job", query.JobID().String())
	}

	return scanJobRow(rows)
}
