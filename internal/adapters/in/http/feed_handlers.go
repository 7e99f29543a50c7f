package http

import (
	"net/http"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// distanceFeedRequest is the telemetry feed payload. Durations arrive in
// whole seconds; the flag fields arrive as raw feed literals where exactly
// "true" means yes and anything else, including absence, means no.
type distanceFeedRequest struct {
	Distance        *float64 `json:"distance"`
	TravelTime      *int64   `json:"time"`
	SessionTime     *int64   `json:"session_time"`
	AdminComments   *string  `json:"admin_comments"`
	Flagged         string   `json:"flagged"`
	ManuallyHandled string   `json:"manually_handled"`
	ByAdmin         string   `json:"by_admin"`
}

// DistanceFeed handles POST /api/v1/jobs/:jobId/distance-feed.
// Applies telemetry and admin-override fields to a job. Only supplied fields
// are written; the telemetry pair and the override group commit independently.
func (s *Server) DistanceFeed(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req distanceFeedRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	cmd, err := commands.NewDistanceFeedCommand(
		jobID,
		req.Distance,
		secondsToDuration(req.TravelTime),
		secondsToDuration(req.SessionTime),
		req.AdminComments,
		kernel.FlagFromLiteral(req.Flagged),
		kernel.FlagFromLiteral(req.ManuallyHandled),
		kernel.FlagFromLiteral(req.ByAdmin),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DistanceFeed.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type resendNotificationsRequest struct {
	Push bool `json:"push"`
	SMS  bool `json:"sms"`
}

// channelResultJSON reports one channel's outcome in the resend response.
type channelResultJSON struct {
	Attempted bool   `json:"attempted"`
	Sent      bool   `json:"sent"`
	Error     string `json:"error,omitempty"`
}

type resendNotificationsResponse struct {
	Push channelResultJSON `json:"push"`
	SMS  channelResultJSON `json:"sms"`
}

// ResendNotifications handles POST /api/v1/jobs/:jobId/notifications/resend.
// The response reports each channel independently: push may succeed while
// SMS fails, and the body says exactly that instead of one combined error.
func (s *Server) ResendNotifications(ctx echo.Context) error {
	jobID, err := jobIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req resendNotificationsRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	cmd, err := commands.NewResendNotificationsCommand(jobID, req.Push, req.SMS)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.handlers.ResendNotifications.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toResendJSON(report))
}

func toResendJSON(report services.DispatchReport) resendNotificationsResponse {
	return resendNotificationsResponse{
		Push: channelResult(report.PushAttempted, report.PushErr),
		SMS:  channelResult(report.SMSAttempted, report.SMSErr),
	}
}

func channelResult(attempted bool, err error) channelResultJSON {
	result := channelResultJSON{
		Attempted: attempted,
		Sent:      attempted && err == nil,
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func secondsToDuration(seconds *int64) *time.Duration {
	if seconds == nil {
		return nil
	}
	d := time.Duration(*seconds) * time.Second
	return &d
}
