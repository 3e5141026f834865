package commands

import (
	"context"
	"time"

	"concierge/internal/core/domain/model/order"
	"concierge/internal/core/ports"
)

// UpdateOrderStatusCommandHandler persists order status changes.
//
// The delivery timestamp follows the status: moving to delivered stamps the
// current time, moving anywhere else writes an explicit null so a previously
// stamped time does not survive a status change away from delivered.
type UpdateOrderStatusCommandHandler struct {
	orders ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(orders ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{orders: orders}
}

// Handle validates the command and persists the status change.
// Returns the updated record as stored by the remote store.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var deliveryTime *time.Time
	if cmd.NewStatus() == order.StatusDelivered {
		now := time.Now().UTC()
		deliveryTime = &now
	}

	return h.orders.UpdateStatus(ctx, cmd.OrderID(), cmd.NewStatus(), deliveryTime)
}
