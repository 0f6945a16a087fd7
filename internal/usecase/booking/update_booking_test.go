package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

func storedBooking() *models.Booking {
	return &models.Booking{
		ID:          7,
		Time:        "14:00",
		DurationMin: 45,
		Date:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Status:      "pending",
	}
}

func TestUpdateBooking_Success(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetBooking", mock.Anything, uint(7)).Return(storedBooking(), nil)
	repo.On("UpdateBookingGuarded", mock.Anything, mock.Anything).
		Return([]models.Booking{}, nil)

	uc := NewUpdateBooking(repo, testDispatcher(), nil)

	newTime := "15:00"
	newDuration := 60

	b, err := uc.Execute(context.Background(), UpdateBookingInput{
		BookingID:   7,
		Time:        &newTime,
		DurationMin: &newDuration,
	})
	require.NoError(t, err)

	assert.Equal(t, "15:00", b.Time)
	assert.Equal(t, 60, b.DurationMin)
}

func TestUpdateBooking_Conflict(t *testing.T) {
	conflicting := []models.Booking{{ID: 9, Time: "15:00", DurationMin: 30}}

	repo := new(mockRepo)
	repo.On("GetBooking", mock.Anything, uint(7)).Return(storedBooking(), nil)
	repo.On("UpdateBookingGuarded", mock.Anything, mock.Anything).
		Return(conflicting, nil)

	uc := NewUpdateBooking(repo, testDispatcher(), nil)

	newTime := "15:00"
	_, err := uc.Execute(context.Background(), UpdateBookingInput{
		BookingID: 7,
		Time:      &newTime,
	})

	ce, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, uint(9), ce.Conflicts[0].ID)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetBooking", mock.Anything, uint(7)).Return(nil, errors.New("not found"))

	uc := NewUpdateBooking(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), UpdateBookingInput{BookingID: 7})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestUpdateBooking_InvalidTime(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetBooking", mock.Anything, uint(7)).Return(storedBooking(), nil)

	uc := NewUpdateBooking(repo, testDispatcher(), nil)

	bad := "99:99"
	_, err := uc.Execute(context.Background(), UpdateBookingInput{
		BookingID: 7,
		Time:      &bad,
	})

	_, ok := httperr.AsValidation(err)
	assert.True(t, ok)
	repo.AssertNotCalled(t, "UpdateBookingGuarded", mock.Anything, mock.Anything)
}

func TestUpdateBooking_ClearStylist(t *testing.T) {
	stylistID := uint(3)
	stored := storedBooking()
	stored.StylistID = &stylistID

	repo := new(mockRepo)
	repo.On("GetBooking", mock.Anything, uint(7)).Return(stored, nil)
	repo.On("UpdateBookingGuarded", mock.Anything, mock.Anything).
		Return([]models.Booking{}, nil)

	uc := NewUpdateBooking(repo, testDispatcher(), nil)

	b, err := uc.Execute(context.Background(), UpdateBookingInput{
		BookingID:    7,
		ClearStylist: true,
	})
	require.NoError(t, err)
	assert.Nil(t, b.StylistID)
}

func TestUpdateBooking_InvalidatesBothDates(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetBooking", mock.Anything, uint(7)).Return(storedBooking(), nil)
	repo.On("UpdateBookingGuarded", mock.Anything, mock.Anything).
		Return([]models.Booking{}, nil)

	cache := newFakeCache()
	cache.store["2026-09-14"] = &AvailabilityResult{}
	cache.store["2026-09-21"] = &AvailabilityResult{}

	uc := NewUpdateBooking(repo, testDispatcher(), cache)

	newDate := time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), UpdateBookingInput{
		BookingID: 7,
		Date:      &newDate,
	})
	require.NoError(t, err)

	assert.Empty(t, cache.store, "old and new dates are both invalidated")
}
