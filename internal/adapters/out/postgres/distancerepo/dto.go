// Package distancerepo provides data transfer objects and mapping functions
// for job telemetry persistence. One distance record exists per job; each
// telemetry report overwrites the previous one.
package distancerepo

import (
	"time"

	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DistanceDTO represents the database structure for persisting telemetry
// records. The job id doubles as the primary key, enforcing the one-to-one
// relation with jobs.
type DistanceDTO struct {
	JobID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Value    float64
	Duration int64 `gorm:"type:bigint"`
}

// TableName specifies the database table name for telemetry records.
func (DistanceDTO) TableName() string {
	return "distances"
}

// fromDomain converts a distance record to its database representation.
func fromDomain(record *distance.Distance) DistanceDTO {
	return DistanceDTO{
		JobID:    record.JobID().Bytes(),
		Value:    record.Value(),
		Duration: int64(record.Duration()),
	}
}

// toDomain converts a database DTO to a distance record.
func toDomain(dto DistanceDTO) (*distance.Distance, error) {
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	return distance.RestoreDistance(jobID, dto.Value, time.Duration(dto.Duration))
}
