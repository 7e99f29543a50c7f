package http

import (
	"net/http"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type acceptJobRequest struct {
	JobID string `json:"job_id"`
}

// AcceptJob handles POST /api/v1/jobs/accept.
// The job id arrives in the batch payload; the acceptance contract is the
// same as the by-id route: at most one translator wins, the rest get a 409.
func (s *Server) AcceptJob(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req acceptJobRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AcceptJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AcceptJobByID handles POST /api/v1/jobs/:jobId/accept.
func (s *Server) AcceptJobByID(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptJobByIDCommand(jobID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AcceptJobByID.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartJob handles POST /api/v1/jobs/:jobId/start.
// Only the assigned translator may start the session.
func (s *Server) StartJob(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartJobCommand(jobID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.StartJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelJob handles POST /api/v1/jobs/:jobId/cancel.
// The acting role is recorded on the job for audit.
func (s *Server) CancelJob(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelJobCommand(jobID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// EndJob handles POST /api/v1/jobs/:jobId/end.
func (s *Server) EndJob(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewEndJobCommand(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.EndJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CustomerNoShow handles POST /api/v1/jobs/:jobId/no-show.
func (s *Server) CustomerNoShow(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCustomerNoShowCommand(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CustomerNoShow.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReopenJob handles POST /api/v1/jobs/:jobId/reopen.
// Only legal on a terminal job; the job re-enters the pending pool.
func (s *Server) ReopenJob(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReopenJobCommand(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ReopenJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
