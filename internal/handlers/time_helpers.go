package handlers

import (
	"time"

	"github.com/jmkbeauty/salon-booking/internal/models"
	"github.com/jmkbeauty/salon-booking/internal/timezone"
)

// All dates arriving over HTTP are naive "YYYY-MM-DD" strings
// interpreted in the salon's configured timezone.

func locationFromSettings(settings *models.SalonSettings) *time.Location {
	if settings != nil && settings.Timezone != "" {
		return timezone.Location(settings.Timezone)
	}
	return timezone.Location(timezone.DefaultTimezone)
}

func parseDateInSalon(settings *models.SalonSettings, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSettings(settings),
	)
}

func nowInSalon(settings *models.SalonSettings) time.Time {
	return time.Now().In(locationFromSettings(settings))
}
