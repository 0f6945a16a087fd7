package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("a@b.co"))
	assert.True(t, validEmail("first.last+tag@example.org"))

	assert.False(t, validEmail(""))
	assert.False(t, validEmail("missing-at.example.com"))
	assert.False(t, validEmail("no domain@example.com"))
	assert.False(t, validEmail("a@nodot"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, validPhone("+91 98765 43210"))
	assert.True(t, validPhone("9876543210"))
	assert.True(t, validPhone("(022) 1234-5678"))

	assert.False(t, validPhone("12345"))
	assert.False(t, validPhone("abcdefghij"))
}

func TestValidateRequest_PastDate(t *testing.T) {
	now := time.Date(2026, 9, 14, 15, 0, 0, 0, time.UTC)

	errs := validateRequest("a@b.co", "9876543210", now.AddDate(0, 0, -1), now)
	assert.Equal(t, []string{"Booking date must be in the future"}, errs)

	// Same day is allowed even when the clock has passed midnight.
	errs = validateRequest("a@b.co", "9876543210", now.Truncate(24*time.Hour), now)
	assert.Empty(t, errs)
}
