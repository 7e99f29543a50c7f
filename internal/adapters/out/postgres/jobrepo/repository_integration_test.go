package jobrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"booking/internal/adapters/out/postgres/jobrepo"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// JobRepositoryIntegrationTestSuite provides integration tests for
// JobRepository using PostgreSQL containers, including the acceptance race.
type JobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *jobrepo.GormJobRepository
	tracker    *MockAggregateTracker
}

func (suite *JobRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&jobrepo.JobDTO{}))
}

func (suite *JobRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = jobrepo.NewGormJobRepository(suite.db, suite.tracker)
}

func (suite *JobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *JobRepositoryIntegrationTestSuite) createPendingJob() *job.Job {
	booked, err := job.NewJob(
		kernel.NewUUID(), kernel.NewUUID(),
		"Court interpretation", "District court, hall 4",
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return booked
}

func (suite *JobRepositoryIntegrationTestSuite) addJob(booked *job.Job) {
	suite.tracker.On("TrackAggregate", booked.ID(), booked).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), booked))
}

func (suite *JobRepositoryIntegrationTestSuite) TestAdd_ValidJob_Success() {
	booked := suite.createPendingJob()

	suite.addJob(booked)

	var count int64
	suite.Require().NoError(suite.db.Model(&jobrepo.JobDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_ExistingJob_RoundTrip() {
	ctx := context.Background()
	booked := suite.createPendingJob()
	suite.addJob(booked)

	restored, err := suite.repository.Get(ctx, booked.ID())
	suite.Require().NoError(err)

	suite.Equal(booked.ID(), restored.ID())
	suite.Equal(booked.CustomerID(), restored.CustomerID())
	suite.Nil(restored.Translator())
	suite.Equal("Court interpretation", restored.Title())
	suite.Equal("District court, hall 4", restored.Description())
	suite.Equal(job.Pending, restored.Status())
	suite.Equal(kernel.No, restored.Flagged())
	suite.Equal(kernel.No, restored.ManuallyHandled())
	suite.Equal(kernel.No, restored.ByAdmin())
	suite.Nil(restored.SessionTime())
	suite.Nil(restored.CancelledBy())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_NonExistentJob_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_MatchingExpectedStatus_Succeeds() {
	ctx := context.Background()
	booked := suite.createPendingJob()
	suite.addJob(booked)

	translatorID := kernel.NewUUID()
	suite.Require().NoError(booked.Accept(translatorID, time.Now().UTC()))

	suite.tracker.On("TrackAggregate", booked.ID(), booked).Once()
	suite.Require().NoError(suite.repository.Update(ctx, booked, job.Pending))

	restored, err := suite.repository.Get(ctx, booked.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Assigned, restored.Status())
	suite.Require().NotNil(restored.Translator())
	suite.True(translatorID.IsEqual(*restored.Translator()))
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_StaleExpectedStatus_ReturnsConcurrentStatusChange() {
	ctx := context.Background()
	booked := suite.createPendingJob()
	suite.addJob(booked)

	first, err := suite.repository.Get(ctx, booked.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, booked.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Accept(kernel.NewUUID(), time.Now().UTC()))
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Update(ctx, first, job.Pending))

	// The second writer still believes the job is pending.
	suite.Require().NoError(second.Accept(kernel.NewUUID(), time.Now().UTC()))
	err = suite.repository.Update(ctx, second, job.Pending)
	suite.Require().ErrorIs(err, ports.ErrConcurrentStatusChange)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_NonExistentJob_ReturnsNotFoundError() {
	missing := suite.createPendingJob()
	suite.Require().NoError(missing.Accept(kernel.NewUUID(), time.Now().UTC()))

	err := suite.repository.Update(context.Background(), missing, job.Pending)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_ConcurrentAccepts_ExactlyOneWinner() {
	ctx := context.Background()
	booked := suite.createPendingJob()
	suite.addJob(booked)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	const translators = 8
	winners := make([]kernel.UUID, 0, translators)
	losses := 0

	var mu sync.Mutex
	var wg sync.WaitGroup
	for range translators {
		wg.Add(1)
		go func() {
			defer wg.Done()

			translatorID := kernel.NewUUID()
			claimed, err := suite.repository.Get(ctx, booked.ID())
			if err != nil {
				return
			}
			if err = claimed.Accept(translatorID, time.Now().UTC()); err != nil {
				// Read a row another goroutine already assigned.
				mu.Lock()
				losses++
				mu.Unlock()
				return
			}

			err = suite.repository.Update(ctx, claimed, job.Pending)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, translatorID)
			} else {
				losses++
			}
		}()
	}
	wg.Wait()

	suite.Require().Len(winners, 1)
	suite.Equal(translators-1, losses)

	final, err := suite.repository.Get(ctx, booked.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Assigned, final.Status())
	suite.Require().NotNil(final.Translator())
	suite.True(winners[0].IsEqual(*final.Translator()))
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_Reopen_ClearsAssignment() {
	ctx := context.Background()
	booked := suite.createPendingJob()
	suite.addJob(booked)

	translatorID := kernel.NewUUID()
	suite.Require().NoError(booked.Accept(translatorID, time.Now().UTC()))
	suite.tracker.On("TrackAggregate", booked.ID(), booked)
	suite.Require().NoError(suite.repository.Update(ctx, booked, job.Pending))

	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	suite.Require().NoError(err)
	suite.Require().NoError(booked.Cancel(actor, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, booked, job.Assigned))

	suite.Require().NoError(booked.Reopen(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, booked, job.Cancelled))

	restored, err := suite.repository.Get(ctx, booked.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Pending, restored.Status())
	suite.Nil(restored.Translator())
	suite.Nil(restored.CancelledBy())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdateOverrides_WritesOnlySuppliedFields() {
	ctx := context.Background()
	booked := suite.createPendingJob()
	suite.addJob(booked)

	comment := "customer asked to reschedule twice"
	flagged := kernel.Yes
	err := suite.repository.UpdateOverrides(ctx, booked.ID(), job.Overrides{
		AdminComments: &comment,
		Flagged:       &flagged,
	})
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, booked.ID())
	suite.Require().NoError(err)
	suite.Equal(comment, restored.AdminComments())
	suite.Equal(kernel.Yes, restored.Flagged())

	// Everything the feed did not supply is untouched.
	suite.Equal(job.Pending, restored.Status())
	suite.Equal(kernel.No, restored.ManuallyHandled())
	suite.Equal(kernel.No, restored.ByAdmin())
	suite.Nil(restored.SessionTime())
	suite.Equal("Court interpretation", restored.Title())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdateOverrides_NonExistentJob_ReturnsNotFoundError() {
	comment := "nobody home"
	err := suite.repository.UpdateOverrides(context.Background(), kernel.NewUUID(), job.Overrides{
		AdminComments: &comment,
	})
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetAllPending_ReturnsOnlyPendingOldestFirst() {
	ctx := context.Background()

	older, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Older booking", "",
		time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond))
	suite.Require().NoError(err)
	newer := suite.createPendingJob()

	assigned := suite.createPendingJob()
	suite.Require().NoError(assigned.Accept(kernel.NewUUID(), time.Now().UTC()))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(older.ID(), pending[0].ID())
	suite.Equal(newer.ID(), pending[1].ID())
}

func TestJobRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(JobRepositoryIntegrationTestSuite))
}
