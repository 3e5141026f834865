package commands

import (
	"errors"
	"fmt"

	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemRequest is a requested order line before pricing: a menu item reference,
// a positive quantity and optional notes. The price is looked up by the
// handler at order-creation time.
type ItemRequest struct {
	ItemID   int64
	Quantity int
	Notes    string
}

// CreateOrderCommand represents a request to place a room-service order
// against an active booking.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	bookingID           int64
	roomID              int
	items               []ItemRequest
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Validates that
// the booking and room ids are positive, that at least one item is requested
// and that every item has a positive id and quantity. Whether the booking
// exists and is active is checked by the handler against the remote store.
func NewCreateOrderCommand(
	bookingID int64,
	roomID int,
	items []ItemRequest,
	specialInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setRoomID(roomID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// BookingID returns the referenced booking.
func (c CreateOrderCommand) BookingID() int64 {
	return c.bookingID
}

// RoomID returns the room the order is for.
func (c CreateOrderCommand) RoomID() int {
	return c.roomID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemRequest {
	return c.items
}

// SpecialInstructions returns the free-text instructions, if any.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setBookingID(bookingID int64) error {
	if bookingID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("booking id", fmt.Errorf("%d is not greater than 0", bookingID))
	}

	c.bookingID = bookingID
	return nil
}

func (c *CreateOrderCommand) setRoomID(roomID int) error {
	if roomID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("room id", fmt.Errorf("%d is not greater than 0", roomID))
	}

	c.roomID = roomID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if item.ItemID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("item id",
				fmt.Errorf("%d is not greater than 0", item.ItemID))
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	c.items = items
	return nil
}
