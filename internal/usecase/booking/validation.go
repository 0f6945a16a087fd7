package booking

import (
	"regexp"
	"time"
)

// Field checks mirror the public booking form: they run before any
// conflict detection and collect every problem instead of stopping at
// the first.

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]{10,}$`)
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// validateRequest returns the list of field-level errors for a booking
// request. now is injected so tests control "the past".
func validateRequest(email, phone string, date time.Time, now time.Time) []string {
	var errs []string

	if !validEmail(email) {
		errs = append(errs, "Valid email is required")
	}
	if !validPhone(phone) {
		errs = append(errs, "Valid phone number is required")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		errs = append(errs, "Booking date must be in the future")
	}

	return errs
}
