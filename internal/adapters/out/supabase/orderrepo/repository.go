package orderrepo

import (
	"context"
	"time"

	"concierge/internal/adapters/out/supabase"
	"concierge/internal/core/domain/model/order"
	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"
)

// Repository implements ports.OrderRepository against the remote store.
type Repository struct {
	client *supabase.Client
}

// NewRepository creates an order repository on the given gateway.
func NewRepository(client *supabase.Client) (*Repository, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &Repository{client: client}, nil
}

// FindAll returns orders matching the filter. Predicates are pushed down to
// the store as query parameters.
func (r *Repository) FindAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	var filters []supabase.Filter
	if filter.Status != "" {
		filters = append(filters, supabase.Eq("status", string(filter.Status)))
	}
	if filter.RoomID != 0 {
		filters = append(filters, supabase.Eq("room_id", filter.RoomID))
	}

	var dtos []OrderDTO
	if err := r.client.Select(ctx, tableName, filters, &dtos); err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Create inserts a new order and returns the stored record with its assigned
// identity.
func (r *Repository) Create(ctx context.Context, draft order.Draft) (*order.Order, error) {
	var created []OrderDTO
	if err := r.client.Insert(ctx, tableName, fromDraft(draft), &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errs.NewRemoteStoreError("insert", tableName, 0)
	}

	return toDomain(created[0])
}

// UpdateStatus sets the status of a single order. The delivery_time column is
// always part of the patch: a timestamp when the order is delivered, an
// explicit null otherwise, so a re-opened order loses its stale stamp.
func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, status order.Status, deliveryTime *time.Time) (*order.Order, error) {
	patch := map[string]any{
		"status":        string(status),
		"delivery_time": timestampOrNull(deliveryTime),
	}

	var updated []OrderDTO
	filters := []supabase.Filter{supabase.Eq("order_id", orderID)}
	if err := r.client.Update(ctx, tableName, filters, patch, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}

	return toDomain(updated[0])
}

// CompleteForRoom closes all pending orders for a room in a single patch.
func (r *Repository) CompleteForRoom(ctx context.Context, roomID int, completedAt time.Time) ([]*order.Order, error) {
	patch := map[string]any{
		"status":          string(order.StatusCompleted),
		"completion_time": completedAt.Format(time.RFC3339),
	}
	filters := []supabase.Filter{
		supabase.Eq("room_id", roomID),
		supabase.Eq("status", string(order.StatusPending)),
	}

	var updated []OrderDTO
	if err := r.client.Update(ctx, tableName, filters, patch, &updated); err != nil {
		return nil, err
	}

	return toDomainSlice(updated)
}

// timestampOrNull formats t for the store, preserving an explicit null in
// the patch when t is nil.
func timestampOrNull(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
