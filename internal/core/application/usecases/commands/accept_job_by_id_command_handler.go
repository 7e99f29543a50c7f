package commands

import (
	"context"
)

// AcceptJobByIDCommandHandler handles direct-id acceptance.
// It shares the race-resolution logic of AcceptJobCommandHandler: only the
// way the job id reaches the command differs.
type AcceptJobByIDCommandHandler struct {
	inner AcceptJobCommandHandler
}

// NewAcceptJobByIDCommandHandler creates a handler delegating to the shared
// acceptance logic.
func NewAcceptJobByIDCommandHandler(inner AcceptJobCommandHandler) AcceptJobByIDCommandHandler {
	return AcceptJobByIDCommandHandler{inner: inner}
}

// Handle processes the direct-id acceptance command with the same contract as
// AcceptJobCommandHandler.Handle.
func (h AcceptJobByIDCommandHandler) Handle(ctx context.Context, cmd AcceptJobByIDCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	accept, err := NewAcceptJobCommand(cmd.JobID(), cmd.Actor())
	if err != nil {
		return err
	}

	return h.inner.Handle(ctx, accept)
}
