package jobs

import (
	"context"
	"log/slog"

	"concierge/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RoomStatusDigestJob logs a daily snapshot of pending orders and scheduled
// cleanings, giving the morning shift a starting picture without querying
// the store by hand.
type RoomStatusDigestJob struct {
	handler queries.RoomStatusSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRoomStatusDigestJob creates the daily digest job. The summary is
// computed at 08:00 server time.
func NewRoomStatusDigestJob(handler queries.RoomStatusSummaryQueryHandler, logger *slog.Logger) *RoomStatusDigestJob {
	return &RoomStatusDigestJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "room_status_digest_job"),
	}
}

// Start schedules the digest to run every morning.
func (j *RoomStatusDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 8 * * *", func() {
		ctx := context.Background()
		query := queries.NewRoomStatusSummaryQuery()

		summary, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Room status digest failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Room status digest",
			"pending_orders", summary.PendingOrders,
			"scheduled_cleaning", summary.ScheduledCleaning,
			"rooms_with_orders", summary.RoomsWithOrders,
			"rooms_to_clean", summary.RoomsToClean,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Room status digest job started (daily at 08:00)")
	return nil
}

// Stop stops the digest job.
func (j *RoomStatusDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Room status digest job stopped")
}
