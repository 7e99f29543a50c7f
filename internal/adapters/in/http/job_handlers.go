package http

import (
	"errors"
	"net/http"
	"strconv"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListJobs handles GET /api/v1/jobs.
// Customers and translators see the jobs they are party to; admin roles see
// every job. Optional query parameters: status, page, page_size.
func (s *Server) ListJobs(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	statusFilter, err := statusFilterFromQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if actor.Role().IsPrivileged() {
		return s.listAllJobs(ctx, statusFilter)
	}

	query, err := queries.NewGetUserJobsQuery(actor.ID(), statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	jobs, err := s.handlers.GetUserJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobListJSON(jobs))
}

func (s *Server) listAllJobs(ctx echo.Context, statusFilter *job.Status) error {
	page, pageSize, err := paginationFromQuery(ctx)
	if err != nil {
		return respondValidation(ctx, err.Error())
	}

	query, err := queries.NewGetAllJobsQuery(statusFilter, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	jobs, err := s.handlers.GetAllJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobListJSON(jobs))
}

// GetJob handles GET /api/v1/jobs/:jobId.
func (s *Server) GetJob(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobJSON(resp))
}

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateJob handles POST /api/v1/jobs.
// The requesting actor becomes the booking customer.
func (s *Server) CreateJob(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req createJobRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(jobID, actor, req.Title, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": jobID.String()})
}

type updateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateJob handles PATCH /api/v1/jobs/:jobId.
// Only the booking details change here; status and assignment fields are
// untouchable through this route.
func (s *Server) UpdateJob(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateJobRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateJobCommand(jobID, actor, req.Title, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type storeJobEmailRequest struct {
	Email string `json:"email"`
}

// StoreJobEmail handles PUT /api/v1/jobs/:jobId/email.
// Records the contact address for an immediate job. The payload arrives
// email-validated from the collaborator.
func (s *Server) StoreJobEmail(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req storeJobEmailRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	cmd, err := commands.NewStoreJobEmailCommand(jobID, req.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.StoreJobEmail.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetJobsHistory handles GET /api/v1/jobs/history.
// Returns the caller's finished jobs with telemetry, paginated.
func (s *Server) GetJobsHistory(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	page, pageSize, err := paginationFromQuery(ctx)
	if err != nil {
		return respondValidation(ctx, err.Error())
	}

	query, err := queries.NewGetJobsHistoryQuery(actor.ID(), page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.handlers.GetJobsHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toHistoryJSON(history))
}

// GetPotentialJobs handles GET /api/v1/jobs/potential.
// Lists pending jobs the requesting translator is eligible to accept.
func (s *Server) GetPotentialJobs(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPotentialJobsQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	jobs, err := s.handlers.GetPotentialJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobListJSON(jobs))
}

// statusFilterFromQuery parses the optional ?status= parameter.
func statusFilterFromQuery(ctx echo.Context) (*job.Status, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		return nil, nil
	}

	status, err := job.StatusFromString(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// paginationFromQuery parses ?page= and ?page_size=, defaulting to the first
// page with the query's default size.
func paginationFromQuery(ctx echo.Context) (int, int, error) {
	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return 0, 0, errors.New("page must be a positive integer")
		}
		page = parsed
	}

	pageSize := 0
	if raw := ctx.QueryParam("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return 0, 0, errors.New("page_size must be a positive integer")
		}
		pageSize = parsed
	}

	return page, pageSize, nil
}
