package housekeepingrepo

import (
	"context"
	"time"

	"concierge/internal/adapters/out/supabase"
	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"
)

// Repository implements ports.HousekeepingRepository against the remote store.
type Repository struct {
	client *supabase.Client
}

// NewRepository creates a housekeeping repository on the given gateway.
func NewRepository(client *supabase.Client) (*Repository, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &Repository{client: client}, nil
}

// FindAll returns schedules matching the filter. The date predicate matches
// the calendar date column exactly.
func (r *Repository) FindAll(ctx context.Context, filter ports.HousekeepingFilter) ([]*housekeeping.Schedule, error) {
	var filters []supabase.Filter
	if filter.Date != nil {
		filters = append(filters, supabase.Eq("scheduled_date", filter.Date.Format(dateOnlyLayout)))
	}
	if filter.Status != "" {
		filters = append(filters, supabase.Eq("status", string(filter.Status)))
	}
	if filter.RoomID != 0 {
		filters = append(filters, supabase.Eq("room_id", filter.RoomID))
	}

	var dtos []ScheduleDTO
	if err := r.client.Select(ctx, tableName, filters, &dtos); err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateStatus sets the status of a single schedule. The completed_at column
// is always part of the patch: a timestamp for a completed task, an explicit
// null otherwise. A non-empty notes value is written alongside the status.
func (r *Repository) UpdateStatus(ctx context.Context, scheduleID int64, status housekeeping.Status, completedAt *time.Time, notes string) (*housekeeping.Schedule, error) {
	patch := map[string]any{
		"status":       string(status),
		"completed_at": timestampOrNull(completedAt),
	}
	if notes != "" {
		patch["notes"] = notes
	}

	var updated []ScheduleDTO
	filters := []supabase.Filter{supabase.Eq("schedule_id", scheduleID)}
	if err := r.client.Update(ctx, tableName, filters, patch, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, errs.NewObjectNotFoundError("schedule", scheduleID)
	}

	return toDomain(updated[0])
}

// SetRoomState writes a room-level cleanliness state to every schedule row of
// the room and resets the scheduled date. A room with no rows matches nothing,
// which is a successful no-op.
func (r *Repository) SetRoomState(ctx context.Context, roomID int, state string, scheduledDate time.Time) ([]*housekeeping.Schedule, error) {
	patch := map[string]any{
		"status":         state,
		"scheduled_date": scheduledDate.Format(dateOnlyLayout),
	}
	filters := []supabase.Filter{supabase.Eq("room_id", roomID)}

	var updated []ScheduleDTO
	if err := r.client.Update(ctx, tableName, filters, patch, &updated); err != nil {
		return nil, err
	}

	return toDomainSlice(updated)
}

func timestampOrNull(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
