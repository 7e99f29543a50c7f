// Package queries contains read-only projections over the booking store.
// Query handlers read straight through GORM with raw SQL for performance and
// never mutate state, per the CQRS split.
package queries

import (
	"database/sql"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobResponse is the read model for a single job. Statuses, flags and roles
// are rendered in their string forms so the boundary can serialize the
// response without touching domain types.
type JobResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	TranslatorID    *kernel.UUID
	Title           string
	Description     string
	ContactEmail    string
	Status          string
	AdminComments   string
	Flagged         string
	ManuallyHandled string
	ByAdmin         string
	SessionTime     *time.Duration
	CancelledBy     *string
	StartedAt       *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// jobColumns is the fixed column list every job projection selects.
// scanJobRow depends on this order.
const jobColumns = `
	id,
	customer_id,
	translator_id,
	title,
	description,
	contact_email,
	status,
	admin_comments,
	flagged,
	manually_handled,
	by_admin,
	session_time,
	cancelled_by,
	started_at,
	completed_at,
	created_at,
	updated_at`

// scanJobRow reads one job row in jobColumns order into the read model.
func scanJobRow(rows *sql.Rows) (JobResponse, error) {
	var (
		resp            JobResponse
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
	)

	err := rows.Scan(
		&id,
		&customerID,
		&translatorID,
		&resp.Title,
		&resp.Description,
		&resp.ContactEmail,
		&status,
		&resp.AdminComments,
		&flagged,
		&manuallyHandled,
		&byAdmin,
		&sessionTime,
		&cancelledBy,
		&startedAt,
		&completedAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return JobResponse{}, err
	}

	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return JobResponse{}, err
	}
	resp.ID = jobID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return JobResponse{}, err
	}
	resp.CustomerID = custID

	if translatorID.Valid {
		trID, trErr := kernel.UUIDFromBytes(translatorID.UUID[:])
		if trErr != nil {
			return JobResponse{}, trErr
		}
		resp.TranslatorID = &trID
	}

	resp.Status = job.Status(status).String()
	resp.Flagged = kernel.Flag(flagged).String()
	resp.ManuallyHandled = kernel.Flag(manuallyHandled).String()
	resp.ByAdmin = kernel.Flag(byAdmin).String()

	if sessionTime.Valid {
		d := time.Duration(sessionTime.Int64)
		resp.SessionTime = &d
	}
	if cancelledBy.Valid {
		role := kernel.Role(cancelledBy.Int64).String()
		resp.CancelledBy = &role
	}
	if startedAt.Valid {
		t := startedAt.Time
		resp.StartedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		resp.CompletedAt = &t
	}

	return resp, nil
}
