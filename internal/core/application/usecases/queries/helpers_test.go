package queries_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/adapters/out/postgres/distancerepo"
	"booking/internal/adapters/out/postgres/jobrepo"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository tracker without a unit of work.
// Query handler tests seed through the repositories directly.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// startJobsDatabase brings up a throwaway postgres with the booking schema.
func startJobsDatabase(s *suite.Suite) (*postgres.PostgresContainer, *gorm.DB) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)

	err = db.AutoMigrate(&jobrepo.JobDTO{}, &distancerepo.DistanceDTO{})
	s.Require().NoError(err)

	return container, db
}

// saveJob persists a job through the write-side repository so that query
// tests read exactly what command handlers would have written.
func saveJob(s *suite.Suite, db *gorm.DB, j *job.Job) {
	repo := jobrepo.NewGormJobRepository(db, noopTracker{})
	s.Require().NoError(repo.Add(context.Background(), j))
}

func newQueryTestJob(t *testing.T, title string, createdAt time.Time) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(),
		title, "query handler fixture", createdAt)
	if err != nil {
		t.Fatalf("create fixture job: %v", err)
	}
	return j
}
