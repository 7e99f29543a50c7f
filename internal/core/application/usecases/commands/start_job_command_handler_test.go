package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := translatorActor(t)
	target := assignedJob(t, actor.ID())

	cmd, err := commands.NewStartJobCommand(target.ID(), actor)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		jobRepo.On("Update", ctx, mock.AnythingOfType("*job.Job"), job.Assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartJobCommandHandler(factory)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.InProgress, target.Status())
	assert.NotNil(t, target.StartedAt())
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartJobCommandHandler_Handle_OtherTranslatorCannotStart(t *testing.T) {
	ctx := t.Context()
	target := assignedJob(t, kernel.NewUUID())

	cmd, err := commands.NewStartJobCommand(target.ID(), translatorActor(t))
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	jobRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()

	uow := new(MockJobUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartJobCommandHandler(factory)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, job.ErrTranslatorMismatch)
	assert.Equal(t, job.Assigned, target.Status())
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestStartJobCommandHandler_Handle_PendingJobHasNoAssignee(t *testing.T) {
	ctx := t.Context()
	target := pendingJob(t)

	cmd, err := commands.NewStartJobCommand(target.ID(), translatorActor(t))
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	jobRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()

	uow := new(MockJobUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartJobCommandHandler(factory)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, job.ErrTranslatorMismatch)
	assert.Equal(t, job.Pending, target.Status())
}

func TestStartJobCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockJobUoWFactory)
	handler := commands.NewStartJobCommandHandler(factory)

	err := handler.Handle(t.Context(), commands.StartJobCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStartJobCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
