package commands

import (
	"errors"
	"fmt"

	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var ErrUpdateHousekeepingStatusCommandIsNotConstructed = errors.New(
	"UpdateHousekeepingStatusCommand must be created via NewUpdateHousekeepingStatusCommand constructor",
)

// UpdateHousekeepingStatusCommand represents a request to move a housekeeping
// schedule to a new status, optionally merging notes into the record.
type UpdateHousekeepingStatusCommand struct { //nolint:recvcheck //using for validation
	scheduleID int64
	newStatus  housekeeping.Status
	notes      string

	guard guard.ConstructorGuard
}

// NewUpdateHousekeepingStatusCommand creates a command to update a schedule's
// status. Validates that the schedule id is positive and the status is in the
// enum. Notes may be empty.
func NewUpdateHousekeepingStatusCommand(
	scheduleID int64,
	newStatus housekeeping.Status,
	notes string,
) (UpdateHousekeepingStatusCommand, error) {
	cmd := UpdateHousekeepingStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setScheduleID(scheduleID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateHousekeepingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateHousekeepingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateHousekeepingStatusCommandIsNotConstructed)
}

// ScheduleID returns the identity of the schedule to update.
func (c UpdateHousekeepingStatusCommand) ScheduleID() int64 {
	return c.scheduleID
}

// NewStatus returns the status the schedule should move to.
func (c UpdateHousekeepingStatusCommand) NewStatus() housekeeping.Status {
	return c.newStatus
}

// Notes returns the notes to merge into the record; empty means no change.
func (c UpdateHousekeepingStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateHousekeepingStatusCommand) setScheduleID(scheduleID int64) error {
	if scheduleID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("schedule id", fmt.Errorf("%d is not greater than 0", scheduleID))
	}

	c.scheduleID = scheduleID
	return nil
}

func (c *UpdateHousekeepingStatusCommand) setNewStatus(newStatus housekeeping.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
