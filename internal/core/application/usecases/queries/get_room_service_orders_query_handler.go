package queries

import (
	"context"

	"concierge/internal/core/domain/model/order"
	"concierge/internal/core/ports"
)

// GetRoomServiceOrdersQueryHandler reads room-service orders from the remote
// store with the query's predicates pushed down.
type GetRoomServiceOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetRoomServiceOrdersQueryHandler creates a handler for order reads.
func NewGetRoomServiceOrdersQueryHandler(orders ports.OrderRepository) GetRoomServiceOrdersQueryHandler {
	return GetRoomServiceOrdersQueryHandler{orders: orders}
}

// Handle returns the orders matching the query.
func (h GetRoomServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRoomServiceOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.FindAll(ctx, ports.OrderFilter{
		Status: query.Status(),
		RoomID: query.RoomID(),
	})
}
