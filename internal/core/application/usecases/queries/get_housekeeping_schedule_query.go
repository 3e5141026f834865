package queries

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/pkg/guard"
)

var ErrGetHousekeepingScheduleQueryIsNotConstructed = errors.New(
	"GetHousekeepingScheduleQuery must be created via NewGetHousekeepingScheduleQuery constructor",
)

// GetHousekeepingScheduleQuery retrieves housekeeping schedules, optionally
// narrowed by calendar date and status.
type GetHousekeepingScheduleQuery struct {
	date   *time.Time
	status housekeeping.Status

	guard guard.ConstructorGuard
}

// NewGetHousekeepingScheduleQuery creates a query for housekeeping schedules.
// When a non-empty status is given it must belong to the housekeeping status
// enum.
func NewGetHousekeepingScheduleQuery(
	date *time.Time,
	status housekeeping.Status,
) (GetHousekeepingScheduleQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return GetHousekeepingScheduleQuery{}, err
		}
	}

	return GetHousekeepingScheduleQuery{
		date:   date,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHousekeepingScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetHousekeepingScheduleQueryIsNotConstructed)
}

// Date returns the optional date filter; only the calendar date is used.
func (q GetHousekeepingScheduleQuery) Date() *time.Time {
	return q.date
}

// Status returns the optional status filter.
func (q GetHousekeepingScheduleQuery) Status() housekeeping.Status {
	return q.status
}
