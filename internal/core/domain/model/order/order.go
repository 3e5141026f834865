package order

import (
	"errors"
	"fmt"
	"time"

	"concierge/internal/pkg/errs"
)

// ErrOrderIsNotRestored is returned when an Order instance was not created
// through the Restore factory method.
var ErrOrderIsNotRestored = errors.New("Order must be created via Restore")

// Line is a single order line: a menu item reference, a positive quantity and
// the price copied from the menu at order-creation time. The copied price makes
// placed orders immune to later menu price changes.
type Line struct {
	ItemID   int64   `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// Total returns price times quantity for this line.
func (l Line) Total() float64 {
	return l.Price * float64(l.Quantity)
}

// Validate checks the line shape: a positive item id and a positive quantity.
func (l Line) Validate() error {
	if l.ItemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item_id", fmt.Errorf("%d is not greater than 0", l.ItemID))
	}
	if l.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", l.Quantity))
	}
	return nil
}

// Draft is the insert payload for a new order. It exists before the remote
// store has assigned an identity, which is why it is a separate type from
// Order. Drafts created by the HTTP surface carry a booking and line items;
// drafts created by the command interpreter carry only a room and a service
// type.
type Draft struct {
	BookingID           *int64
	RoomID              int
	ServiceType         string
	OrderTime           time.Time
	Status              Status
	SpecialInstructions string
	TotalAmount         float64
	Items               []Line
}

// Order is a room-service order as stored in the remote store.
//
// Invariant: deliveryTime is set if and only if status is delivered. The
// completionTime field belongs to the room-level completion path and is set
// when pending orders for a room are closed in bulk.
type Order struct {
	id                  int64
	bookingID           *int64
	roomID              int
	serviceType         string
	orderTime           time.Time
	deliveryTime        *time.Time
	completionTime      *time.Time
	status              Status
	specialInstructions string
	totalAmount         float64
	items               []Line

	isRestored bool
}

// Restore reconstructs an Order from a remote-store record. The record is
// trusted for status values: the store may hold statuses written by paths
// outside the enum, and reads must not reject them.
func Restore(
	id int64,
	bookingID *int64,
	roomID int,
	serviceType string,
	orderTime time.Time,
	deliveryTime *time.Time,
	completionTime *time.Time,
	status Status,
	specialInstructions string,
	totalAmount float64,
	items []Line,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}

	return &Order{
		id:                  id,
		bookingID:           bookingID,
		roomID:              roomID,
		serviceType:         serviceType,
		orderTime:           orderTime,
		deliveryTime:        deliveryTime,
		completionTime:      completionTime,
		status:              status,
		specialInstructions: specialInstructions,
		totalAmount:         totalAmount,
		items:               items,
		isRestored:          true,
	}, nil
}

// Validate ensures the Order was reconstructed via Restore.
func (o *Order) Validate() error {
	if o == nil || !o.isRestored {
		return ErrOrderIsNotRestored
	}
	return nil
}

// ID returns the order's identity in the remote store.
func (o *Order) ID() int64 {
	return o.id
}

// BookingID returns the referenced booking, or nil for orders placed through
// the command interpreter.
func (o *Order) BookingID() *int64 {
	return o.bookingID
}

// RoomID returns the room the order is delivered to.
func (o *Order) RoomID() int {
	return o.roomID
}

// ServiceType returns the named service type, e.g. "dinner".
// Empty for orders placed through the HTTP surface.
func (o *Order) ServiceType() string {
	return o.serviceType
}

// OrderTime returns the creation timestamp.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// DeliveryTime returns the delivery timestamp, set iff status is delivered.
func (o *Order) DeliveryTime() *time.Time {
	return o.deliveryTime
}

// CompletionTime returns the room-level completion timestamp, if any.
func (o *Order) CompletionTime() *time.Time {
	return o.completionTime
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// SpecialInstructions returns the free-text instructions, if any.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// TotalAmount returns the total monetary amount of the order.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Items returns the order lines.
func (o *Order) Items() []Line {
	return o.items
}
