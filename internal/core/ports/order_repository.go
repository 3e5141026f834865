// Package ports defines the repository interfaces consumed by the use cases.
// Implementations live in the outbound adapters; every operation is a single
// synchronous round-trip to the remote store with no transaction spanning
// multiple calls.
package ports

import (
	"context"
	"time"

	"concierge/internal/core/domain/model/order"
)

// OrderFilter narrows order reads. Zero-valued fields are not applied.
// Filters are pushed down to the remote store as query predicates rather than
// applied in memory, so result sets stay bounded.
type OrderFilter struct {
	Status order.Status
	RoomID int
}

// OrderRepository issues room-service order operations against the remote store.
type OrderRepository interface {
	// FindAll returns orders matching the filter.
	FindAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Create inserts a new order and returns the stored record with its
	// assigned identity.
	Create(ctx context.Context, draft order.Draft) (*order.Order, error)

	// UpdateStatus sets the status of a single order, writing deliveryTime
	// as given: a value when the order is delivered, an explicit null
	// otherwise. Returns the updated record.
	UpdateStatus(ctx context.Context, orderID int64, status order.Status, deliveryTime *time.Time) (*order.Order, error)

	// CompleteForRoom closes all pending orders for a room, stamping the
	// completion time. Zero matched rows is not an error; the returned
	// slice is simply empty.
	CompleteForRoom(ctx context.Context, roomID int, completedAt time.Time) ([]*order.Order, error)
}
