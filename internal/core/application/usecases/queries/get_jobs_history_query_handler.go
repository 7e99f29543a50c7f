package queries

import (
	"context"
	"database/sql"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobsHistoryQueryHandler retrieves a user's job history joined with
// telemetry records.
type GetJobsHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetJobsHistoryQueryHandler creates a handler for history queries.
func NewGetJobsHistoryQueryHandler(db *gorm.DB) GetJobsHistoryQueryHandler {
	return GetJobsHistoryQueryHandler{db: db}
}

// Handle executes the query. Only jobs in a terminal status appear in the
// history; the telemetry half of each entry is nil when no distance feed
// ever reported for the job.
func (h GetJobsHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetJobsHistoryQuery,
) ([]JobHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.customer_id,
			j.translator_id,
			j.title,
			j.description,
			j.contact_email,
			j.status,
			j.admin_comments,
			j.flagged,
			j.manually_handled,
			j.by_admin,
			j.session_time,
			j.cancelled_by,
			j.started_at,
			j.completed_at,
			j.created_at,
			j.updated_at,
			d.value,
			d.duration
		FROM jobs j
		LEFT JOIN distances d ON d.job_id = j.id
		WHERE (j.customer_id = ? OR j.translator_id = ?)
			AND j.status IN (?, ?, ?)
		ORDER BY j.created_at DESC
		LIMIT ? OFFSET ?
	`,
		query.UserID().Bytes(), query.UserID().Bytes(),
		int(job.Completed), int(job.Cancelled), int(job.NoShow),
		query.PageSize(), (query.Page()-1)*query.PageSize(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]JobHistoryResponse, 0)
	for rows.Next() {
		entry, scanErr := scanHistoryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// scanHistoryRow reads one joined job + telemetry row.
func scanHistoryRow(rows *sql.Rows) (JobHistoryResponse, error) {
	var (
		entry           JobHistoryResponse
		id              uuid.UUID
		customerID      uuid.UUID
		translatorID    uuid.NullUUID
		status          int
		flagged         int
		manuallyHandled int
		byAdmin         int
		sessionTime     sql.NullInt64
		cancelledBy     sql.NullInt64
		startedAt       sql.NullTime
		completedAt     sql.NullTime
		distance        sql.NullFloat64
		travelTime      sql.NullInt64
	)

	err := rows.Scan(
		&id,
		&customerID,
		&translatorID,
		&entry.Job.Title,
		&entry.Job.Description,
		&entry.Job.ContactEmail,
		&status,
		&entry.Job.AdminComments,
		&flagged,
		&manuallyHandled,
		&byAdmin,
		&sessionTime,
		&cancelledBy,
		&startedAt,
		&completedAt,
		&entry.Job.CreatedAt,
		&entry.Job.UpdatedAt,
		&distance,
		&travelTime,
	)
	if err != nil {
		return JobHistoryResponse{}, err
	}

	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return JobHistoryResponse{}, err
	}
	entry.Job.ID = jobID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return JobHistoryResponse{}, err
	}
	entry.Job.CustomerID = custID

	if translatorID.Valid {
		trID, trErr := kernel.UUIDFromBytes(translatorID.UUID[:])
		if trErr != nil {
			return JobHistoryResponse{}, trErr
		}
		entry.Job.TranslatorID = &trID
	}

	entry.Job.Status = job.Status(status).String()
	entry.Job.Flagged = kernel.Flag(flagged).String()
	entry.Job.ManuallyHandled = kernel.Flag(manuallyHandled).String()
	entry.Job.ByAdmin = kernel.Flag(byAdmin).String()

	if sessionTime.Valid {
		d := time.Duration(sessionTime.Int64)
		entry.Job.SessionTime = &d
	}
	if cancelledBy.Valid {
		role := kernel.Role(cancelledBy.Int64).String()
		entry.Job.CancelledBy = &role
	}
	if startedAt.Valid {
		t := startedAt.Time
		entry.Job.StartedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		entry.Job.CompletedAt = &t
	}
	if distance.Valid {
		v := distance.Float64
		entry.Distance = &v
	}
	if travelTime.Valid {
		d := time.Duration(travelTime.Int64)
		entry.TravelTime = &d
	}

	return entry, nil
}
