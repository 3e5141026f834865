package queries

import (
	"errors"

	"concierge/internal/core/domain/model/order"
	"concierge/internal/pkg/guard"
)

var ErrGetRoomServiceOrdersQueryIsNotConstructed = errors.New(
	"GetRoomServiceOrdersQuery must be created via NewGetRoomServiceOrdersQuery constructor",
)

// GetRoomServiceOrdersQuery retrieves room-service orders, optionally narrowed
// by status and room. Zero-valued filters are not applied.
type GetRoomServiceOrdersQuery struct {
	status order.Status
	roomID int

	guard guard.ConstructorGuard
}

// NewGetRoomServiceOrdersQuery creates a query for room-service orders. When a
// non-empty status is given it must belong to the order status enum.
func NewGetRoomServiceOrdersQuery(status order.Status, roomID int) (GetRoomServiceOrdersQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return GetRoomServiceOrdersQuery{}, err
		}
	}

	return GetRoomServiceOrdersQuery{
		status: status,
		roomID: roomID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoomServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRoomServiceOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetRoomServiceOrdersQuery) Status() order.Status {
	return q.status
}

// RoomID returns the optional room filter; zero means no room filter.
func (q GetRoomServiceOrdersQuery) RoomID() int {
	return q.roomID
}
