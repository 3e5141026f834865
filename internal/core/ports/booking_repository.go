package ports

import (
	"context"

	"concierge/internal/core/domain/model/booking"
)

// BookingRepository reads booking records from the remote store.
type BookingRepository interface {
	// FindByID returns the booking with the given identity, or an
	// ObjectNotFoundError when no such booking exists.
	FindByID(ctx context.Context, bookingID int64) (booking.Booking, error)
}
