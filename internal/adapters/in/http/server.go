// Package http is the echo boundary of the booking service. Handlers parse
// and validate transport input, build commands and queries, and translate
// core errors into status codes. Actor identity arrives pre-authenticated in
// request headers; this layer never resolves credentials itself.
package http

import (
	"errors"
	"net/http"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers carrying the authenticated caller identity, set by the gateway.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Handlers bundles the use case handlers the server routes to.
type Handlers struct {
	CreateJob           commands.CreateJobCommandHandler
	UpdateJob           commands.UpdateJobCommandHandler
	StoreJobEmail       commands.StoreJobEmailCommandHandler
	AcceptJob           commands.AcceptJobCommandHandler
	AcceptJobByID       commands.AcceptJobByIDCommandHandler
	StartJob            commands.StartJobCommandHandler
	CancelJob           commands.CancelJobCommandHandler
	EndJob              commands.EndJobCommandHandler
	CustomerNoShow      commands.CustomerNoShowCommandHandler
	ReopenJob           commands.ReopenJobCommandHandler
	DistanceFeed        commands.DistanceFeedCommandHandler
	ResendNotifications commands.ResendNotificationsCommandHandler

	GetJob           queries.GetJobQueryHandler
	GetUserJobs      queries.GetUserJobsQueryHandler
	GetAllJobs       queries.GetAllJobsQueryHandler
	GetJobsHistory   queries.GetJobsHistoryQueryHandler
	GetPotentialJobs queries.GetPotentialJobsQueryHandler
}

// Server wires HTTP routes to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates the boundary server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/jobs", s.ListJobs)
	api.POST("/jobs", s.CreateJob)
	api.POST("/jobs/accept", s.AcceptJob)
	api.GET("/jobs/history", s.GetJobsHistory)
	api.GET("/jobs/potential", s.GetPotentialJobs)
	api.GET("/jobs/:jobId", s.GetJob)
	api.PATCH("/jobs/:jobId", s.UpdateJob)
	api.PUT("/jobs/:jobId/email", s.StoreJobEmail)
	api.POST("/jobs/:jobId/accept", s.AcceptJobByID)
	api.POST("/jobs/:jobId/start", s.StartJob)
	api.POST("/jobs/:jobId/cancel", s.CancelJob)
	api.POST("/jobs/:jobId/end", s.EndJob)
	api.POST("/jobs/:jobId/no-show", s.CustomerNoShow)
	api.POST("/jobs/:jobId/reopen", s.ReopenJob)
	api.POST("/jobs/:jobId/distance-feed", s.DistanceFeed)
	api.POST("/jobs/:jobId/notifications/resend", s.ResendNotifications)
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps core errors onto transport statuses:
// missing objects are 404, lost races and illegal transitions are 409,
// rejected input is 422, everything else is a 500 with a generic message.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, commands.ErrJobAlreadyAssigned),
		errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNoChannelSelected):
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// respondValidation reports a transport-level validation failure.
func respondValidation(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Error: message})
}

// actorFromRequest builds the acting user from the gateway identity headers.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

// jobIDFromPath parses the :jobId path parameter.
func jobIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("jobId"))
}
