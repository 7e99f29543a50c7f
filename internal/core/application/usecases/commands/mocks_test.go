package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared mock implementations of the command-layer ports.

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job, expectedStatus job.Status) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateOverrides(ctx context.Context, id kernel.UUID, overrides job.Overrides) error {
	args := m.Called(ctx, id, overrides)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllPending(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockDistanceRepository struct{ mock.Mock }

func (m *MockDistanceRepository) Upsert(ctx context.Context, record *distance.Distance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDistanceRepository) GetByJobID(ctx context.Context, jobID kernel.UUID) (*distance.Distance, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*distance.Distance), args.Error(1)
}

type MockJobUoW struct{ mock.Mock }

func (m *MockJobUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) DistanceRepository() ports.DistanceRepository {
	args := m.Called()
	return args.Get(0).(ports.DistanceRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEligibilityProvider struct{ mock.Mock }

func (m *MockEligibilityProvider) EligibleTranslators(ctx context.Context, jobID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockEligibilityProvider) IsEligible(ctx context.Context, translatorID, jobID kernel.UUID) (bool, error) {
	args := m.Called(ctx, translatorID, jobID)
	return args.Bool(0), args.Error(1)
}

type MockPushGateway struct{ mock.Mock }

func (m *MockPushGateway) SendJobAlert(ctx context.Context, alert ports.JobAlert, recipients []kernel.UUID) error {
	args := m.Called(ctx, alert, recipients)
	return args.Error(0)
}

type MockSMSGateway struct{ mock.Mock }

func (m *MockSMSGateway) SendJobSMS(ctx context.Context, alert ports.JobAlert, translatorID kernel.UUID) error {
	args := m.Called(ctx, alert, translatorID)
	return args.Error(0)
}

// newTestDispatcher builds a real dispatcher over the given gateway mocks.
func newTestDispatcher(push ports.PushGateway, sms ports.SMSGateway) services.NotificationDispatcher {
	return services.NewNotificationDispatcher(push, sms, time.Second)
}

// testLogger discards output; handler tests assert behavior, not log lines.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
