package booking

import (
	"context"
	"time"

	"github.com/jmkbeauty/salon-booking/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetSettings(
		ctx context.Context,
	) (*models.SalonSettings, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetStylist(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	ListStylistsForCategory(
		ctx context.Context,
		category string,
	) ([]models.Stylist, error)

	GetStylistWorkingHours(
		ctx context.Context,
		stylistID uint,
		weekday int,
	) (*models.StylistWorkingHours, error)

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Booking, error)

	// ListActiveBookingsForDate returns pending/confirmed bookings on
	// the given date, across all stylists, ordered by time.
	ListActiveBookingsForDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Booking, error)

	// -------- Booking (guarded write) --------
	// CreateBookingGuarded runs the read-check-write sequence inside a
	// single transaction with row locks on the stylist's day, so two
	// concurrent requests for overlapping intervals serialize. It
	// returns the conflicting bookings instead of creating when the set
	// is non-empty.
	CreateBookingGuarded(
		ctx context.Context,
		b *models.Booking,
	) ([]models.Booking, error)

	// UpdateBookingGuarded re-runs conflict detection excluding the
	// booking itself, then persists the update.
	UpdateBookingGuarded(
		ctx context.Context,
		b *models.Booking,
	) ([]models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Prediction history --------
	ListWaitHistory(
		ctx context.Context,
		serviceID uint,
		stylistID *uint,
		since time.Time,
	) ([]models.Booking, error)

	CountBookingsByWeekday(
		ctx context.Context,
		serviceID uint,
		from time.Time,
		to time.Time,
	) (map[time.Weekday]int, error)

	// -------- Appointment (simple path) --------
	CreateAppointment(
		ctx context.Context,
		a *models.Appointment,
	) error

	// HasAppointmentAt applies the coarse walk-in rule: any other
	// pending/confirmed appointment at the exact same (date, time) pair
	// blocks, regardless of duration.
	HasAppointmentAt(
		ctx context.Context,
		date time.Time,
		timeOfDay string,
	) (bool, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		a *models.Appointment,
	) error
}
