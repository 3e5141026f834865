package commands

import (
	"context"
	"time"

	"concierge/internal/core/domain/model/order"
	"concierge/internal/core/ports"
)

// PlaceServiceOrderCommandHandler inserts minimal pending service orders on
// behalf of the command interpreter.
type PlaceServiceOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewPlaceServiceOrderCommandHandler creates a handler for minimal service orders.
func NewPlaceServiceOrderCommandHandler(orders ports.OrderRepository) PlaceServiceOrderCommandHandler {
	return PlaceServiceOrderCommandHandler{orders: orders}
}

// Handle inserts the order with status pending and returns the stored record.
func (h *PlaceServiceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceServiceOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Create(ctx, order.Draft{
		RoomID:      cmd.RoomID(),
		ServiceType: cmd.ServiceType(),
		OrderTime:   time.Now().UTC(),
		Status:      order.StatusPending,
	})
}
