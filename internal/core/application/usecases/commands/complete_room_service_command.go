package commands

import (
	"errors"
	"fmt"

	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var ErrCompleteRoomServiceCommandIsNotConstructed = errors.New(
	"CompleteRoomServiceCommand must be created via NewCompleteRoomServiceCommand constructor",
)

// CompleteRoomServiceCommand represents the interpreter's request to close the
// pending room-service orders of a room. A room with no pending order matches
// zero rows, which is reported as a count, never as an error.
type CompleteRoomServiceCommand struct { //nolint:recvcheck //using for validation
	roomID int

	guard guard.ConstructorGuard
}

// NewCompleteRoomServiceCommand creates a command to complete a room's pending
// service orders. Validates that the room id is positive.
func NewCompleteRoomServiceCommand(roomID int) (CompleteRoomServiceCommand, error) {
	cmd := CompleteRoomServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRoomID(roomID); err != nil {
		return CompleteRoomServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRoomServiceCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRoomServiceCommandIsNotConstructed)
}

// RoomID returns the room extracted from the phrase.
func (c CompleteRoomServiceCommand) RoomID() int {
	return c.roomID
}

func (c *CompleteRoomServiceCommand) setRoomID(roomID int) error {
	if roomID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("room id", fmt.Errorf("%d is not greater than 0", roomID))
	}

	c.roomID = roomID
	return nil
}
