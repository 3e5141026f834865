// Package booking contains the read-only booking model. Bookings are owned by
// the remote store; this core only reads them to validate order creation.
package booking

// Status values a booking must hold for room-service ordering to proceed.
const (
	StatusConfirmed = "confirmed"
	StatusCheckedIn = "checked_in"
)

// Booking is a reservation record referenced by room-service orders.
type Booking struct {
	ID     int64
	RoomID int
	Status string
}

// IsActive reports whether the booking allows room-service ordering,
// i.e. its status is confirmed or checked_in.
func (b Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}
