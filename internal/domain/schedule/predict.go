package schedule

import (
	"math"
	"time"
)

// Frequency-based scheduling heuristics. These produce advisory
// estimates only and never feed back into conflict detection.

const (
	DefaultWaitMin = 15

	peakAvailability    = 0.3
	offPeakAvailability = 0.7
	forecastConfidence  = 0.85
)

// WaitSample is one historical booking's wait-time observation.
type WaitSample struct {
	ActualWaitMin    *int
	PredictedWaitMin int
}

func (s WaitSample) minutes() int {
	if s.ActualWaitMin != nil && *s.ActualWaitMin > 0 {
		return *s.ActualWaitMin
	}
	if s.PredictedWaitMin > 0 {
		return s.PredictedWaitMin
	}
	return DefaultWaitMin
}

// PredictWaitTime averages the wait observed across recent bookings of
// the same service and stylist. With no history it falls back to the
// default of 15 minutes.
func PredictWaitTime(history []WaitSample) int {
	if len(history) == 0 {
		return DefaultWaitMin
	}

	sum := 0
	for _, s := range history {
		sum += s.minutes()
	}
	return int(math.Round(float64(sum) / float64(len(history))))
}

// PeakWeekdays returns the weekdays tied for the highest historical
// booking count. An empty history has no peak days.
func PeakWeekdays(counts map[time.Weekday]int) []time.Weekday {
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return nil
	}

	var peak []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if counts[d] == max {
			peak = append(peak, d)
		}
	}
	return peak
}

// Forecast is the per-weekday availability estimate attached to
// prediction responses.
type Forecast struct {
	Day                   string  `json:"day"`
	PredictedAvailability float64 `json:"predictedAvailability"`
	RecommendedAction     string  `json:"recommendedAction"`
	Confidence            float64 `json:"confidence"`
}

var forecastOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdayForecasts classifies each weekday with the two-tier score:
// 0.3 availability on peak days, 0.7 otherwise, fixed 0.85 confidence.
func WeekdayForecasts(peak []time.Weekday) []Forecast {
	isPeak := make(map[time.Weekday]bool, len(peak))
	for _, d := range peak {
		isPeak[d] = true
	}

	out := make([]Forecast, 0, len(forecastOrder))
	for _, d := range forecastOrder {
		f := Forecast{
			Day:                   d.String(),
			PredictedAvailability: offPeakAvailability,
			RecommendedAction:     "Flexible timing available",
			Confidence:            forecastConfidence,
		}
		if isPeak[d] {
			f.PredictedAvailability = peakAvailability
			f.RecommendedAction = "Book in advance"
		}
		out = append(out, f)
	}
	return out
}

// OptimalBookingDays picks up to three days with availability above 0.5,
// in forecast order.
func OptimalBookingDays(forecasts []Forecast) []string {
	out := make([]string, 0, 3)
	for _, f := range forecasts {
		if f.PredictedAvailability > 0.5 {
			out = append(out, f.Day)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}
