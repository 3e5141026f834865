package commands

import (
	"context"
	"time"

	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/core/ports"
)

// UpdateHousekeepingStatusCommandHandler persists housekeeping status changes.
//
// The completion timestamp follows the status: moving to completed stamps the
// current time, moving anywhere else writes an explicit null.
type UpdateHousekeepingStatusCommandHandler struct {
	schedules ports.HousekeepingRepository
}

// NewUpdateHousekeepingStatusCommandHandler creates a handler for housekeeping
// status updates.
func NewUpdateHousekeepingStatusCommandHandler(
	schedules ports.HousekeepingRepository,
) UpdateHousekeepingStatusCommandHandler {
	return UpdateHousekeepingStatusCommandHandler{schedules: schedules}
}

// Handle validates the command and persists the status change.
// Returns the updated record as stored by the remote store.
func (h *UpdateHousekeepingStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateHousekeepingStatusCommand,
) (*housekeeping.Schedule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if cmd.NewStatus() == housekeeping.StatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}

	return h.schedules.UpdateStatus(ctx, cmd.ScheduleID(), cmd.NewStatus(), completedAt, cmd.Notes())
}
