package commands

import (
	"errors"
	"fmt"

	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var ErrSetRoomCleanlinessCommandIsNotConstructed = errors.New(
	"SetRoomCleanlinessCommand must be created via NewSetRoomCleanlinessCommand constructor",
)

// SetRoomCleanlinessCommand represents the interpreter's room-level request to
// mark a room cleaned or dirty. The state is one of the room cleanliness
// states, not a schedule status; the room id is taken straight from the
// phrase, so a nonexistent room simply matches zero rows at the remote store.
type SetRoomCleanlinessCommand struct { //nolint:recvcheck //using for validation
	roomID int
	state  string

	guard guard.ConstructorGuard
}

// NewSetRoomCleanlinessCommand creates a command to set a room's cleanliness
// state. Validates that the room id is positive and the state is "cleaned" or
// "dirty".
func NewSetRoomCleanlinessCommand(roomID int, state string) (SetRoomCleanlinessCommand, error) {
	cmd := SetRoomCleanlinessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRoomID(roomID),
		cmd.setState(state),
	); err != nil {
		return SetRoomCleanlinessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRoomCleanlinessCommand) Validate() error {
	return c.guard.Validate(ErrSetRoomCleanlinessCommandIsNotConstructed)
}

// RoomID returns the room extracted from the phrase.
func (c SetRoomCleanlinessCommand) RoomID() int {
	return c.roomID
}

// State returns the cleanliness state to write.
func (c SetRoomCleanlinessCommand) State() string {
	return c.state
}

func (c *SetRoomCleanlinessCommand) setRoomID(roomID int) error {
	if roomID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("room id", fmt.Errorf("%d is not greater than 0", roomID))
	}

	c.roomID = roomID
	return nil
}

func (c *SetRoomCleanlinessCommand) setState(state string) error {
	if state != housekeeping.RoomCleaned && state != housekeeping.RoomDirty {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%q is not a room cleanliness state", state))
	}

	c.state = state
	return nil
}
