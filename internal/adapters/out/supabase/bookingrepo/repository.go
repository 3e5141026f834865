// Package bookingrepo reads booking records from the remote store's bookings
// table. The core never writes bookings; it only checks that a booking exists
// and is in a serviceable state before an order is placed against it.
package bookingrepo

import (
	"context"

	"concierge/internal/adapters/out/supabase"
	"concierge/internal/core/domain/model/booking"
	"concierge/internal/pkg/errs"
)

const tableName = "bookings"

// BookingDTO is a row of the bookings table, narrowed to the fields order
// placement depends on.
type BookingDTO struct {
	ID     int64  `json:"id"`
	RoomID int    `json:"room_id"`
	Status string `json:"status"`
}

// Repository implements ports.BookingRepository against the remote store.
type Repository struct {
	client *supabase.Client
}

// NewRepository creates a booking repository on the given gateway.
func NewRepository(client *supabase.Client) (*Repository, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &Repository{client: client}, nil
}

// FindByID returns the booking with the given identity. A zero-row result
// maps to an ObjectNotFoundError.
func (r *Repository) FindByID(ctx context.Context, bookingID int64) (booking.Booking, error) {
	var dtos []BookingDTO
	filters := []supabase.Filter{supabase.Eq("id", bookingID)}
	if err := r.client.Select(ctx, tableName, filters, &dtos); err != nil {
		return booking.Booking{}, err
	}
	if len(dtos) == 0 {
		return booking.Booking{}, errs.NewObjectNotFoundError("booking", bookingID)
	}

	dto := dtos[0]
	return booking.Booking{ID: dto.ID, RoomID: dto.RoomID, Status: dto.Status}, nil
}
