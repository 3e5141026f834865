package ports

import (
	"context"
	"time"

	"concierge/internal/core/domain/model/housekeeping"
)

// HousekeepingFilter narrows schedule reads. Zero-valued fields are not
// applied. Date matches on the calendar date only.
type HousekeepingFilter struct {
	Date   *time.Time
	Status housekeeping.Status
	RoomID int
}

// HousekeepingRepository issues housekeeping schedule operations against the
// remote store.
type HousekeepingRepository interface {
	// FindAll returns schedules matching the filter.
	FindAll(ctx context.Context, filter HousekeepingFilter) ([]*housekeeping.Schedule, error)

	// UpdateStatus sets the status of a single schedule, writing completedAt
	// as given: a value when the task is completed, an explicit null
	// otherwise. A non-empty notes value is merged into the record.
	// Returns the updated record.
	UpdateStatus(ctx context.Context, scheduleID int64, status housekeeping.Status, completedAt *time.Time, notes string) (*housekeeping.Schedule, error)

	// SetRoomState writes a room-level cleanliness state ("cleaned" or
	// "dirty") to every schedule row for the room, resetting the scheduled
	// date. A room with no schedule rows matches zero rows, which is not an
	// error.
	SetRoomState(ctx context.Context, roomID int, state string, scheduledDate time.Time) ([]*housekeeping.Schedule, error)
}
