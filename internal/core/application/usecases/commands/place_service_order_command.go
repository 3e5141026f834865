package commands

import (
	"errors"
	"fmt"

	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var ErrPlaceServiceOrderCommandIsNotConstructed = errors.New(
	"PlaceServiceOrderCommand must be created via NewPlaceServiceOrderCommand constructor",
)

// PlaceServiceOrderCommand represents the interpreter's request to create a
// minimal room-service order of a named type, e.g. "order dinner for room
// 305". Such orders carry no booking, no line items and no amount.
type PlaceServiceOrderCommand struct { //nolint:recvcheck //using for validation
	roomID      int
	serviceType string

	guard guard.ConstructorGuard
}

// NewPlaceServiceOrderCommand creates a command to place a minimal service
// order. Validates that the room id is positive and the service type is not
// empty.
func NewPlaceServiceOrderCommand(roomID int, serviceType string) (PlaceServiceOrderCommand, error) {
	cmd := PlaceServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRoomID(roomID),
		cmd.setServiceType(serviceType),
	); err != nil {
		return PlaceServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceServiceOrderCommandIsNotConstructed)
}

// RoomID returns the room extracted from the phrase.
func (c PlaceServiceOrderCommand) RoomID() int {
	return c.roomID
}

// ServiceType returns the named service type extracted from the phrase.
func (c PlaceServiceOrderCommand) ServiceType() string {
	return c.serviceType
}

func (c *PlaceServiceOrderCommand) setRoomID(roomID int) error {
	if roomID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("room id", fmt.Errorf("%d is not greater than 0", roomID))
	}

	c.roomID = roomID
	return nil
}

func (c *PlaceServiceOrderCommand) setServiceType(serviceType string) error {
	if serviceType == "" {
		return errs.NewValueIsRequiredError("service type")
	}

	c.serviceType = serviceType
	return nil
}
