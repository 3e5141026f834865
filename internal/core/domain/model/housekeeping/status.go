package housekeeping

import "concierge/internal/pkg/errs"

// Status represents the lifecycle state of a housekeeping task.
// The enum is fixed: scheduled, in_progress, completed, skipped.
type Status string

const (
	// StatusScheduled is the initial status of a planned cleaning.
	StatusScheduled Status = "scheduled"

	// StatusInProgress indicates cleaning has started.
	StatusInProgress Status = "in_progress"

	// StatusCompleted indicates cleaning finished.
	// Updates to this status stamp the completion time.
	StatusCompleted Status = "completed"

	// StatusSkipped indicates the scheduled cleaning was skipped.
	StatusSkipped Status = "skipped"
)

// Room cleanliness states written by the command interpreter's room-level
// path. They mirror what the remote store actually receives for phrases like
// "room 101 is cleaned" and are not members of the Status enum.
const (
	RoomCleaned = "cleaned"
	RoomDirty   = "dirty"
)

// AllowedStatuses returns the fixed set of statuses accepted by status
// updates, in declaration order.
func AllowedStatuses() []string {
	return []string{
		string(StatusScheduled),
		string(StatusInProgress),
		string(StatusCompleted),
		string(StatusSkipped),
	}
}

// Validate confirms membership in the housekeeping status enum.
// Returns an InvalidStatusError carrying the allowed set otherwise.
func (s Status) Validate() error {
	for _, allowed := range AllowedStatuses() {
		if string(s) == allowed {
			return nil
		}
	}
	return errs.NewInvalidStatusError("housekeeping", string(s), AllowedStatuses())
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}
