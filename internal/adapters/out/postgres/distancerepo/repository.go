package distancerepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDistanceRepository implements DistanceRepository using GORM.
type GormDistanceRepository struct {
	db *gorm.DB
}

// NewGormDistanceRepository creates a new GORM telemetry repository.
func NewGormDistanceRepository(db *gorm.DB) *GormDistanceRepository {
	return &GormDistanceRepository{db: db}
}

// Upsert creates or fully replaces the telemetry record for a job.
// Each report wins over the previous one; there is no merge.
func (r *GormDistanceRepository) Upsert(ctx context.Context, record *distance.Distance) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetByJobID retrieves the telemetry record for a job.
func (r *GormDistanceRepository) GetByJobID(
	ctx context.Context,
	jobID kernel.UUID,
) (*distance.Distance, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto DistanceDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("distance", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
