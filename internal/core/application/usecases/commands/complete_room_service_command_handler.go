package commands

import (
	"context"
	"time"

	"concierge/internal/core/ports"
)

// CompleteRoomServiceCommandHandler closes pending orders room-wide, stamping
// a completion time on every matched row.
type CompleteRoomServiceCommandHandler struct {
	orders ports.OrderRepository
}

// NewCompleteRoomServiceCommandHandler creates a handler for room-level order
// completion.
func NewCompleteRoomServiceCommandHandler(orders ports.OrderRepository) CompleteRoomServiceCommandHandler {
	return CompleteRoomServiceCommandHandler{orders: orders}
}

// Handle completes the room's pending orders and reports how many rows were
// touched. Zero rows is a valid outcome.
func (h *CompleteRoomServiceCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteRoomServiceCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	completed, err := h.orders.CompleteForRoom(ctx, cmd.RoomID(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	return len(completed), nil
}
