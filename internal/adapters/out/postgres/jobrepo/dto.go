// Package jobrepo provides data transfer objects and mapping functions for job
// persistence. It implements the repository pattern for the job aggregate,
// handling the conversion between domain entities and database rows.
package jobrepo

import (
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Status and flags are stored as their integer enum values; durations as
// nanosecond counts. Timestamps are owned by the domain, so GORM's automatic
// time tracking is disabled.
type JobDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	TranslatorID    *uuid.UUID `gorm:"type:uuid;index"`
	Title           string
	Description     string
	ContactEmail    string
	Status          int `gorm:"type:smallint;index"`
	AdminComments   string
	Flagged         int        `gorm:"type:smallint"`
	ManuallyHandled int        `gorm:"type:smallint"`
	ByAdmin         int        `gorm:"type:smallint"`
	SessionTime     *int64     `gorm:"type:bigint"`
	CancelledBy     *int       `gorm:"type:smallint"`
	StartedAt       *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var translatorID *uuid.UUID
	if id := aggregate.Translator(); id != nil {
		raw := id.Bytes()
		translatorID = &raw
	}

	var sessionTime *int64
	if d := aggregate.SessionTime(); d != nil {
		ns := int64(*d)
		sessionTime = &ns
	}

	var cancelledBy *int
	if role := aggregate.CancelledBy(); role != nil {
		v := int(*role)
		cancelledBy = &v
	}

	return JobDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		TranslatorID:    translatorID,
		Title:           aggregate.Title(),
		Description:     aggregate.Description(),
		ContactEmail:    aggregate.ContactEmail(),
		Status:          int(aggregate.Status()),
		AdminComments:   aggregate.AdminComments(),
		Flagged:         int(aggregate.Flagged()),
		ManuallyHandled: int(aggregate.ManuallyHandled()),
		ByAdmin:         int(aggregate.ByAdmin()),
		SessionTime:     sessionTime,
		CancelledBy:     cancelledBy,
		StartedAt:       aggregate.StartedAt(),
		CompletedAt:     aggregate.CompletedAt(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a job aggregate.
// Reconstruction goes through RestoreJob so the status/assignment invariant
// is re-checked on every read.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var translatorID *kernel.UUID
	if dto.TranslatorID != nil {
		trID, trErr := kernel.UUIDFromBytes((*dto.TranslatorID)[:])
		if trErr != nil {
			return nil, trErr
		}
		translatorID = &trID
	}

	var sessionTime *time.Duration
	if dto.SessionTime != nil {
		d := time.Duration(*dto.SessionTime)
		sessionTime = &d
	}

	var cancelledBy *kernel.Role
	if dto.CancelledBy != nil {
		role := kernel.Role(*dto.CancelledBy)
		cancelledBy = &role
	}

	return job.RestoreJob(
		id,
		customerID,
		translatorID,
		dto.Title, dto.Description, dto.ContactEmail,
		job.Status(dto.Status),
		dto.AdminComments,
		kernel.Flag(dto.Flagged), kernel.Flag(dto.ManuallyHandled), kernel.Flag(dto.ByAdmin),
		sessionTime,
		cancelledBy,
		dto.StartedAt, dto.CompletedAt,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
