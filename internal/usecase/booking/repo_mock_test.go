package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jmkbeauty/salon-booking/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetSettings(ctx context.Context) (*models.SalonSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalonSettings), args.Error(1)
}

func (m *mockRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockRepo) GetStylist(ctx context.Context, id uint) (*models.Stylist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stylist), args.Error(1)
}

func (m *mockRepo) ListStylistsForCategory(ctx context.Context, category string) ([]models.Stylist, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stylist), args.Error(1)
}

func (m *mockRepo) GetStylistWorkingHours(ctx context.Context, stylistID uint, weekday int) (*models.StylistWorkingHours, error) {
	args := m.Called(ctx, stylistID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StylistWorkingHours), args.Error(1)
}

func (m *mockRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) ListActiveBookingsForDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) CreateBookingGuarded(ctx context.Context, b *models.Booking) ([]models.Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) UpdateBookingGuarded(ctx context.Context, b *models.Booking) ([]models.Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) ListWaitHistory(ctx context.Context, serviceID uint, stylistID *uint, since time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, serviceID, stylistID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepo) CountBookingsByWeekday(ctx context.Context, serviceID uint, from, to time.Time) (map[time.Weekday]int, error) {
	args := m.Called(ctx, serviceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[time.Weekday]int), args.Error(1)
}

func (m *mockRepo) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepo) HasAppointmentAt(ctx context.Context, date time.Time, timeOfDay string) (bool, error) {
	args := m.Called(ctx, date, timeOfDay)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) UpdateAppointment(ctx context.Context, a *models.Appointment) error {
	return m.Called(ctx, a).Error(0)
}
