package commands

import (
	"context"
	"time"

	"concierge/internal/core/ports"
)

// SetRoomCleanlinessCommandHandler writes room-level cleanliness states.
// The scheduled date is reset to today alongside the state, mirroring what
// the remote schema expects from this path.
type SetRoomCleanlinessCommandHandler struct {
	schedules ports.HousekeepingRepository
}

// NewSetRoomCleanlinessCommandHandler creates a handler for room cleanliness updates.
func NewSetRoomCleanlinessCommandHandler(
	schedules ports.HousekeepingRepository,
) SetRoomCleanlinessCommandHandler {
	return SetRoomCleanlinessCommandHandler{schedules: schedules}
}

// Handle writes the state to every schedule row of the room and reports how
// many rows were touched. Zero rows is a valid outcome.
func (h *SetRoomCleanlinessCommandHandler) Handle(
	ctx context.Context,
	cmd SetRoomCleanlinessCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	updated, err := h.schedules.SetRoomState(ctx, cmd.RoomID(), cmd.State(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	return len(updated), nil
}
