package queries

import (
	"context"
	"sort"
	"time"

	"concierge/internal/core/domain/model/order"
	"concierge/internal/core/ports"
)

// RoomStatusSummaryQueryHandler builds the room-status snapshot from two
// store reads: pending orders and today's scheduled cleanings.
type RoomStatusSummaryQueryHandler struct {
	orders    ports.OrderRepository
	schedules ports.HousekeepingRepository
}

// NewRoomStatusSummaryQueryHandler creates a handler for the summary query.
func NewRoomStatusSummaryQueryHandler(
	orders ports.OrderRepository,
	schedules ports.HousekeepingRepository,
) RoomStatusSummaryQueryHandler {
	return RoomStatusSummaryQueryHandler{orders: orders, schedules: schedules}
}

// Handle recomputes the summary. Counts are the full cardinality of the
// matched rows; room sets are deduplicated and sorted ascending.
func (h RoomStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query RoomStatusSummaryQuery,
) (RoomStatusSummary, error) {
	if err := query.Validate(); err != nil {
		return RoomStatusSummary{}, err
	}

	pending, err := h.orders.FindAll(ctx, ports.OrderFilter{Status: order.StatusPending})
	if err != nil {
		return RoomStatusSummary{}, err
	}

	today := time.Now().UTC()
	todayCleaning, err := h.schedules.FindAll(ctx, ports.HousekeepingFilter{Date: &today})
	if err != nil {
		return RoomStatusSummary{}, err
	}

	orderRooms := make(map[int]struct{}, len(pending))
	for _, o := range pending {
		orderRooms[o.RoomID()] = struct{}{}
	}

	cleaningRooms := make(map[int]struct{}, len(todayCleaning))
	for _, s := range todayCleaning {
		cleaningRooms[s.RoomID()] = struct{}{}
	}

	return RoomStatusSummary{
		PendingOrders:     len(pending),
		ScheduledCleaning: len(todayCleaning),
		RoomsWithOrders:   sortedRooms(orderRooms),
		RoomsToClean:      sortedRooms(cleaningRooms),
		GeneratedAt:       time.Now().UTC(),
	}, nil
}

func sortedRooms(rooms map[int]struct{}) []int {
	result := make([]int, 0, len(rooms))
	for room := range rooms {
		result = append(result, room)
	}
	sort.Ints(result)
	return result
}
