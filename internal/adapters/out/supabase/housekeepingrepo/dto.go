// Package housekeepingrepo persists housekeeping schedules in the remote
// store's housekeeping_schedule table.
package housekeepingrepo

import (
	"strings"
	"time"

	"concierge/internal/core/domain/model/housekeeping"
)

const tableName = "housekeeping_schedule"

// dateOnly is a calendar date column. The store holds scheduled_date without
// a time component, so it round-trips as "2006-01-02".
type dateOnly time.Time

const dateOnlyLayout = "2006-01-02"

func (d dateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateOnlyLayout) + `"`), nil
}

func (d *dateOnly) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	// The column is nullable; a null or empty date round-trips as the zero
	// date instead of failing the whole row decode.
	if raw == "" || raw == "null" {
		*d = dateOnly(time.Time{})
		return nil
	}

	parsed, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return err
	}
	*d = dateOnly(parsed)
	return nil
}

// ScheduleDTO is a row of the housekeeping_schedule table.
type ScheduleDTO struct {
	ScheduleID    int64      `json:"schedule_id,omitempty"`
	RoomID        int        `json:"room_id"`
	ScheduledDate dateOnly   `json:"scheduled_date"`
	Status        string     `json:"status"`
	StaffAssigned string     `json:"staff_assigned,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CompletedAt   *time.Time `json:"completed_at"`
}

func toDomain(dto ScheduleDTO) (*housekeeping.Schedule, error) {
	return housekeeping.Restore(
		dto.ScheduleID,
		dto.RoomID,
		time.Time(dto.ScheduledDate),
		housekeeping.Status(dto.Status),
		dto.StaffAssigned,
		dto.Notes,
		dto.CompletedAt,
	)
}

func toDomainSlice(dtos []ScheduleDTO) ([]*housekeeping.Schedule, error) {
	schedules := make([]*housekeeping.Schedule, 0, len(dtos))
	for _, dto := range dtos {
		schedule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}
