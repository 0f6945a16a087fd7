package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmkbeauty/salon-booking/internal/audit"
	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
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

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil, zerolog.Nop())
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		Name:    "Riya Patel",
		Email:   "riya@example.com",
		Phone:   "+91 91234 56789",
		Service: "Bridal makeup",
		Date:    time.Now().AddDate(0, 0, 3).Truncate(24 * time.Hour),
		Time:    "11:00",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := new(mockRepo)
	repo.On("HasAppointmentAt", mock.Anything, mock.Anything, "11:00").Return(false, nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateAppointment(repo, testDispatcher())

	a, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "pending", a.Status)
	assert.Equal(t, "Bridal makeup", a.Service)
	repo.AssertExpectations(t)
}

func TestCreateAppointment_ExactSlotTaken(t *testing.T) {
	repo := new(mockRepo)
	repo.On("HasAppointmentAt", mock.Anything, mock.Anything, "11:00").Return(true, nil)

	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "time_slot_taken"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_ValidationCollectsAllErrors(t *testing.T) {
	repo := new(mockRepo)

	uc := NewCreateAppointment(repo, testDispatcher())

	in := validInput()
	in.Name = ""
	in.Email = "nope"
	in.Time = "late"
	in.Date = time.Now().AddDate(0, 0, -2)

	_, err := uc.Execute(context.Background(), in)

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 4)
	repo.AssertNotCalled(t, "HasAppointmentAt", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	stored := &models.Appointment{ID: 5, Status: "pending"}

	repo := new(mockRepo)
	repo.On("GetAppointment", mock.Anything, uint(5)).Return(stored, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateAppointmentStatus(repo, testDispatcher())

	a, err := uc.Execute(context.Background(), 5, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", a.Status)
}

func TestUpdateAppointmentStatus_TerminalState(t *testing.T) {
	stored := &models.Appointment{ID: 5, Status: "cancelled"}

	repo := new(mockRepo)
	repo.On("GetAppointment", mock.Anything, uint(5)).Return(stored, nil)

	uc := NewUpdateAppointmentStatus(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 5, domain.StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateAppointmentStatus_NotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetAppointment", mock.Anything, uint(5)).Return(nil, errors.New("missing"))

	uc := NewUpdateAppointmentStatus(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 5, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
