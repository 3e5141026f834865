package commands

import (
	"context"
	"errors"
	"time"

	"concierge/internal/core/domain/model/order"
	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"
)

// CreateOrderResult is the identity and initial status of a placed order.
type CreateOrderResult struct {
	OrderID int64
	Status  order.Status
}

// CreateOrderCommandHandler places room-service orders.
//
// The handler validates the booking before any line-item lookup, prices every
// line from the menu at call time, and inserts the order as the last remote
// call. A failure at any step before the insert leaves no record behind.
type CreateOrderCommandHandler struct {
	orders   ports.OrderRepository
	menu     ports.MenuRepository
	bookings ports.BookingRepository
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	menu ports.MenuRepository,
	bookings ports.BookingRepository,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:   orders,
		menu:     menu,
		bookings: bookings,
	}
}

// Handle validates the booking, prices the items and inserts the order with
// status pending. Returns the new order's identity and status.
//
// Failure modes: InvalidBookingError when the booking is missing or not
// active, ItemNotFoundError naming the first unknown menu item, and
// RemoteStoreError for gateway failures.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	b, err := h.bookings.FindByID(ctx, cmd.BookingID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CreateOrderResult{}, errs.NewInvalidBookingErrorWithCause(cmd.BookingID(), err)
		}
		return CreateOrderResult{}, err
	}

	if !b.IsActive() {
		return CreateOrderResult{}, errs.NewInvalidBookingError(cmd.BookingID(), b.Status)
	}

	lines := make([]order.Line, 0, len(cmd.Items()))
	total := 0.0
	for _, item := range cmd.Items() {
		menuItem, itemErr := h.menu.FindByID(ctx, item.ItemID)
		if itemErr != nil {
			return CreateOrderResult{}, itemErr
		}

		line := order.Line{
			ItemID:   menuItem.ID,
			Quantity: item.Quantity,
			Price:    menuItem.Price,
			Notes:    item.Notes,
		}
		lines = append(lines, line)
		total += line.Total()
	}

	bookingID := cmd.BookingID()
	created, err := h.orders.Create(ctx, order.Draft{
		BookingID:           &bookingID,
		RoomID:              cmd.RoomID(),
		OrderTime:           time.Now().UTC(),
		Status:              order.StatusPending,
		SpecialInstructions: cmd.SpecialInstructions(),
		TotalAmount:         total,
		Items:               lines,
	})
	if err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: created.ID(), Status: created.Status()}, nil
}
