package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

func TestActiveStatuses(t *testing.T) {
	assert.Equal(t, []string{"pending", "confirmed"}, ActiveStatuses())

	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusNoShow.IsActive())
}

func TestConfirm(t *testing.T) {
	b := &models.Booking{Status: "pending"}
	require.NoError(t, Confirm(b))
	assert.Equal(t, "confirmed", b.Status)

	// Confirming twice is an invalid transition.
	err := Confirm(b)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: "confirmed"}
	require.NoError(t, Cancel(b, "customer request", true, now))

	assert.Equal(t, "cancelled", b.Status)
	assert.Equal(t, "customer request", b.CancellationReason)
	assert.True(t, b.RefundRequested)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)
}

func TestCancel_TerminalStates(t *testing.T) {
	now := time.Now()
	for _, status := range []string{"cancelled", "completed", "no-show"} {
		b := &models.Booking{Status: status}
		err := Cancel(b, "", false, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "status %s", status)
		assert.Equal(t, status, b.Status)
	}
}

func TestComplete_RequiresConfirmed(t *testing.T) {
	b := &models.Booking{Status: "pending"}
	err := Complete(b)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	b.Status = "confirmed"
	require.NoError(t, Complete(b))
	assert.Equal(t, "completed", b.Status)
}

func TestMarkNoShow_RequiresConfirmed(t *testing.T) {
	b := &models.Booking{Status: "confirmed"}
	require.NoError(t, MarkNoShow(b))
	assert.Equal(t, "no-show", b.Status)

	err := MarkNoShow(&models.Booking{Status: "pending"})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestAsConflict(t *testing.T) {
	ce := ConflictError{Conflicts: []models.Booking{{ID: 1}}}

	got, ok := AsConflict(ce)
	require.True(t, ok)
	assert.Len(t, got.Conflicts, 1)

	_, ok = AsConflict(assert.AnError)
	assert.False(t, ok)
}
