package jobs

import (
	"fmt"
	"log/slog"

	"concierge/internal/core/application/usecases/queries"
)

// JobManager coordinates the scheduled jobs of the application behind a
// single start/stop interface.
type JobManager struct {
	roomStatusDigestJob *RoomStatusDigestJob
}

// NewJobManager creates a job manager wiring the query handlers the jobs run.
func NewJobManager(
	summaryHandler queries.RoomStatusSummaryQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		roomStatusDigestJob: NewRoomStatusDigestJob(summaryHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.roomStatusDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start room status digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.roomStatusDigestJob.Stop()
}
