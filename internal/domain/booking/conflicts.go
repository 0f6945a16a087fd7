package booking

import (
	"github.com/jmkbeauty/salon-booking/internal/domain/schedule"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

// Proposal is the interval a new or edited booking wants to occupy.
type Proposal struct {
	Time        string
	DurationMin int
}

// DetectConflicts returns every existing booking whose occupied
// interval overlaps the proposal's under the half-open test. Callers
// are expected to pass only active bookings for the same stylist and
// date, with the booking being edited already excluded.
//
// Existing rows with an unparseable time are treated as conflicting
// rather than silently skipped.
func DetectConflicts(p Proposal, existing []models.Booking) ([]models.Booking, error) {
	start, err := schedule.ParseClock(p.Time)
	if err != nil {
		return nil, err
	}
	proposed := schedule.NewInterval(start, p.DurationMin)

	var conflicts []models.Booking
	for _, b := range existing {
		bStart, err := schedule.ParseClock(b.Time)
		if err != nil {
			conflicts = append(conflicts, b)
			continue
		}
		if proposed.Overlaps(schedule.NewInterval(bStart, b.DurationMin)) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts, nil
}
