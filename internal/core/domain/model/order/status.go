package order

import "concierge/internal/pkg/errs"

// Status represents the lifecycle state of a room-service order.
//
// The enum is fixed: pending, preparing, delivered, cancelled. The remote
// store holds statuses as lowercase strings, so Status is a string value
// object rather than an integer enum.
//
// No transition-order guard is applied: any status may be set from any other.
// The only lifecycle rule is that the delivery timestamp accompanies the
// delivered status and nothing else.
type Status string

const (
	// StatusPending is the initial status of every new order.
	StatusPending Status = "pending"

	// StatusPreparing indicates the kitchen has started on the order.
	StatusPreparing Status = "preparing"

	// StatusDelivered indicates the order reached the room.
	// Updates to this status stamp the delivery time.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the order was withdrawn.
	StatusCancelled Status = "cancelled"

	// StatusCompleted is written by the room-level "complete room service"
	// path, which closes pending orders for a room and stamps a completion
	// time. It is not part of the enum accepted by UpdateOrderStatus.
	StatusCompleted Status = "completed"
)

// AllowedStatuses returns the fixed set of statuses accepted by status
// updates, in declaration order.
func AllowedStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusPreparing),
		string(StatusDelivered),
		string(StatusCancelled),
	}
}

// Validate confirms membership in the order status enum.
// Returns an InvalidStatusError carrying the allowed set otherwise.
func (s Status) Validate() error {
	for _, allowed := range AllowedStatuses() {
		if string(s) == allowed {
			return nil
		}
	}
	return errs.NewInvalidStatusError("order", string(s), AllowedStatuses())
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}
