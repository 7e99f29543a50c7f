package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEndJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := inProgressJob(t, kernel.NewUUID())

	cmd, err := commands.NewEndJobCommand(target.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		jobRepo.On("Update", ctx, mock.AnythingOfType("*job.Job"), job.InProgress).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEndJobCommandHandler(factory)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.Completed, target.Status())
	assert.NotNil(t, target.CompletedAt())
	require.NotNil(t, target.SessionTime())
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEndJobCommandHandler_Handle_AssignedJobNotStarted(t *testing.T) {
	ctx := t.Context()
	target := assignedJob(t, kernel.NewUUID())

	cmd, err := commands.NewEndJobCommand(target.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	jobRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()

	uow := new(MockJobUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewEndJobCommandHandler(factory)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, job.Assigned, target.Status())
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestEndJobCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockJobUoWFactory)
	handler := commands.NewEndJobCommandHandler(factory)

	err := handler.Handle(t.Context(), commands.EndJobCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEndJobCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
