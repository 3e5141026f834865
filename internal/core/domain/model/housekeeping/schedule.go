package housekeeping

import (
	"errors"
	"fmt"
	"time"

	"concierge/internal/pkg/errs"
)

// ErrScheduleIsNotRestored is returned when a Schedule instance was not
// created through the Restore factory method.
var ErrScheduleIsNotRestored = errors.New("Schedule must be created via Restore")

// Schedule is a housekeeping task for a room on a given date as stored in the
// remote store.
//
// Invariant: completedAt is set if and only if status is completed.
type Schedule struct {
	id            int64
	roomID        int
	scheduledDate time.Time
	status        Status
	staffAssigned string
	notes         string
	completedAt   *time.Time

	isRestored bool
}

// Restore reconstructs a Schedule from a remote-store record. As with orders,
// the record is trusted for status values: the room-level path writes states
// outside the enum and reads must not reject them.
func Restore(
	id int64,
	roomID int,
	scheduledDate time.Time,
	status Status,
	staffAssigned string,
	notes string,
	completedAt *time.Time,
) (*Schedule, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("schedule id", fmt.Errorf("%d is not greater than 0", id))
	}

	return &Schedule{
		id:            id,
		roomID:        roomID,
		scheduledDate: scheduledDate,
		status:        status,
		staffAssigned: staffAssigned,
		notes:         notes,
		completedAt:   completedAt,
		isRestored:    true,
	}, nil
}

// Validate ensures the Schedule was reconstructed via Restore.
func (s *Schedule) Validate() error {
	if s == nil || !s.isRestored {
		return ErrScheduleIsNotRestored
	}
	return nil
}

// ID returns the schedule's identity in the remote store.
func (s *Schedule) ID() int64 {
	return s.id
}

// RoomID returns the room to be cleaned.
func (s *Schedule) RoomID() int {
	return s.roomID
}

// ScheduledDate returns the date the cleaning is scheduled for.
// Only the date portion is meaningful.
func (s *Schedule) ScheduledDate() time.Time {
	return s.scheduledDate
}

// Status returns the current housekeeping status.
func (s *Schedule) Status() Status {
	return s.status
}

// StaffAssigned returns the assigned staff identifier, if any.
func (s *Schedule) StaffAssigned() string {
	return s.staffAssigned
}

// Notes returns the free-text notes, if any.
func (s *Schedule) Notes() string {
	return s.notes
}

// CompletedAt returns the completion timestamp, set iff status is completed.
func (s *Schedule) CompletedAt() *time.Time {
	return s.completedAt
}
