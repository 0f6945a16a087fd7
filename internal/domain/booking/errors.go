package booking

import (
	"errors"

	"github.com/jmkbeauty/salon-booking/internal/models"
)

// ConflictError rejects a booking whose interval is already occupied.
// It carries the conflicting bookings so the caller can tell the client
// which reservations got there first. Maps to HTTP 409.
type ConflictError struct {
	Conflicts []models.Booking
}

func (e ConflictError) Error() string {
	return "booking_conflict"
}

func AsConflict(err error) (ConflictError, bool) {
	var ce ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return ConflictError{}, false
}
