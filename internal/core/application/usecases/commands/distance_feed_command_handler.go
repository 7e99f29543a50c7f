package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/distance"
)

// DistanceFeedCommandHandler applies one telemetry report.
// The distance-record upsert and the job override write are independent
// transactions: one may succeed while the other fails, and neither blocks
// lifecycle transitions on unrelated jobs. Each group is individually atomic
// under the store's per-job serialization.
type DistanceFeedCommandHandler struct {
	uowFactory UoWFactory
}

// NewDistanceFeedCommandHandler creates a handler for telemetry reports.
func NewDistanceFeedCommandHandler(uowFactory UoWFactory) DistanceFeedCommandHandler {
	return DistanceFeedCommandHandler{uowFactory: uowFactory}
}

// Handle processes the telemetry report.
// A report with only distance/time touches exactly the distance record and
// leaves every job field alone; a report with only override fields does the
// reverse.
func (h DistanceFeedCommandHandler) Handle(ctx context.Context, cmd DistanceFeedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.HasTelemetry() {
		if err := h.upsertTelemetry(ctx, cmd); err != nil {
			return err
		}
	}

	if cmd.HasOverrides() {
		if err := h.applyOverrides(ctx, cmd); err != nil {
			return err
		}
	}

	return nil
}

// upsertTelemetry replaces the job's distance record, last-write-wins.
// An absent half of the pair is written as zero, matching the
// whole-record replacement semantics of the feed.
func (h DistanceFeedCommandHandler) upsertTelemetry(ctx context.Context, cmd DistanceFeedCommand) error {
	var value float64
	if cmd.Distance() != nil {
		value = *cmd.Distance()
	}

	var travelTime time.Duration
	if cmd.TravelTime() != nil {
		travelTime = *cmd.TravelTime()
	}

	record, err := distance.NewDistance(cmd.JobID(), value, travelTime)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DistanceRepository().Upsert(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h DistanceFeedCommandHandler) applyOverrides(ctx context.Context, cmd DistanceFeedCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.JobRepository().UpdateOverrides(ctx, cmd.JobID(), cmd.Overrides()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
