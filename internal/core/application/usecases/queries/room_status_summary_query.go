package queries

import (
	"errors"
	"time"

	"concierge/internal/pkg/guard"
)

var ErrRoomStatusSummaryQueryIsNotConstructed = errors.New(
	"RoomStatusSummaryQuery must be created via NewRoomStatusSummaryQuery constructor",
)

// RoomStatusSummaryQuery aggregates the current pending orders and today's
// scheduled cleanings into a per-call snapshot. The summary is recomputed in
// full on every Handle; nothing is cached.
type RoomStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewRoomStatusSummaryQuery creates a parameterless room-status summary query.
func NewRoomStatusSummaryQuery() RoomStatusSummaryQuery {
	return RoomStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q RoomStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrRoomStatusSummaryQueryIsNotConstructed)
}

// RoomStatusSummary is the aggregated snapshot: counts, the distinct affected
// room sets in ascending order, and the generation timestamp.
type RoomStatusSummary struct {
	PendingOrders     int
	ScheduledCleaning int
	RoomsWithOrders   []int
	RoomsToClean      []int
	GeneratedAt       time.Time
}
