package queries

import (
	"context"

	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/core/ports"
)

// GetHousekeepingScheduleQueryHandler reads housekeeping schedules from the
// remote store with the query's predicates pushed down.
type GetHousekeepingScheduleQueryHandler struct {
	schedules ports.HousekeepingRepository
}

// NewGetHousekeepingScheduleQueryHandler creates a handler for schedule reads.
func NewGetHousekeepingScheduleQueryHandler(
	schedules ports.HousekeepingRepository,
) GetHousekeepingScheduleQueryHandler {
	return GetHousekeepingScheduleQueryHandler{schedules: schedules}
}

// Handle returns the schedules matching the query.
func (h GetHousekeepingScheduleQueryHandler) Handle(
	ctx context.Context,
	query GetHousekeepingScheduleQuery,
) ([]*housekeeping.Schedule, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.schedules.FindAll(ctx, ports.HousekeepingFilter{
		Date:   query.Date(),
		Status: query.Status(),
	})
}
