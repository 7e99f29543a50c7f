package jobrepo

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a lifecycle mutation with a compare-and-set on the status
// column: the whole row is written only if the stored status still equals
// expectedStatus. With N concurrent writers racing from the same expected
// status, the database serializes the row and at most one update matches.
//
// Select("*") forces zero and nil fields through, so reopening a job
// genuinely clears its translator and session timestamps.
func (r *GormJobRepository) Update(
	ctx context.Context,
	aggregate *job.Job,
	expectedStatus job.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMissedUpdate distinguishes a lost race from a missing row after a
// conditional update matched nothing.
func (r *GormJobRepository) classifyMissedUpdate(ctx context.Context, id kernel.UUID) error {
	var dto JobDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("job", id.String())
		}
		return err
	}
	return ports.ErrConcurrentStatusChange
}

// UpdateOverrides partially updates the administrative override columns of a
// job. Only supplied fields are written; status and assignment columns are
// never touched, so a concurrent lifecycle write cannot be corrupted.
func (r *GormJobRepository) UpdateOverrides(
	ctx context.Context,
	id kernel.UUID,
	overrides job.Overrides,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if overrides.IsEmpty() {
		return nil
	}

	columns := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if overrides.SessionTime != nil {
		columns["session_time"] = int64(*overrides.SessionTime)
	}
	if overrides.AdminComments != nil {
		columns["admin_comments"] = *overrides.AdminComments
	}
	if overrides.Flagged != nil {
		columns["flagged"] = int(*overrides.Flagged)
	}
	if overrides.ManuallyHandled != nil {
		columns["manually_handled"] = int(*overrides.ManuallyHandled)
	}
	if overrides.ByAdmin != nil {
		columns["by_admin"] = int(*overrides.ByAdmin)
	}

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("job", id.String())
	}

	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all jobs awaiting acceptance, oldest first.
func (r *GormJobRepository) GetAllPending(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", int(job.Pending)).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}
