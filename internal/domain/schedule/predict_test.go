package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestPredictWaitTime_MeanOfHistory(t *testing.T) {
	history := []WaitSample{
		{ActualWaitMin: intPtr(10)},
		{ActualWaitMin: intPtr(20)},
		{ActualWaitMin: intPtr(30)},
	}
	assert.Equal(t, 20, PredictWaitTime(history))
}

func TestPredictWaitTime_NoHistory(t *testing.T) {
	assert.Equal(t, DefaultWaitMin, PredictWaitTime(nil))
}

func TestPredictWaitTime_FallbackChain(t *testing.T) {
	// Actual wins over predicted; zero actual falls through to
	// predicted; both zero falls through to the default.
	history := []WaitSample{
		{ActualWaitMin: intPtr(40), PredictedWaitMin: 10},
		{ActualWaitMin: intPtr(0), PredictedWaitMin: 20},
		{},
	}
	// (40 + 20 + 15) / 3 = 25
	assert.Equal(t, 25, PredictWaitTime(history))
}

func TestPredictWaitTime_Rounds(t *testing.T) {
	history := []WaitSample{
		{ActualWaitMin: intPtr(10)},
		{ActualWaitMin: intPtr(15)},
	}
	// 12.5 rounds half away from zero.
	assert.Equal(t, 13, PredictWaitTime(history))
}

func TestPeakWeekdays_TiesForMax(t *testing.T) {
	counts := map[time.Weekday]int{
		time.Monday:   5,
		time.Tuesday:  2,
		time.Saturday: 5,
	}
	assert.Equal(t, []time.Weekday{time.Monday, time.Saturday}, PeakWeekdays(counts))
}

func TestPeakWeekdays_EmptyHistory(t *testing.T) {
	assert.Nil(t, PeakWeekdays(nil))
	assert.Nil(t, PeakWeekdays(map[time.Weekday]int{}))
}

func TestWeekdayForecasts_TwoTierScores(t *testing.T) {
	forecasts := WeekdayForecasts([]time.Weekday{time.Saturday})

	require.Len(t, forecasts, 7)
	assert.Equal(t, "Monday", forecasts[0].Day)
	assert.Equal(t, "Sunday", forecasts[6].Day)

	for _, f := range forecasts {
		assert.Equal(t, 0.85, f.Confidence)
		if f.Day == "Saturday" {
			assert.Equal(t, 0.3, f.PredictedAvailability)
			assert.Equal(t, "Book in advance", f.RecommendedAction)
		} else {
			assert.Equal(t, 0.7, f.PredictedAvailability)
			assert.Equal(t, "Flexible timing available", f.RecommendedAction)
		}
	}
}

func TestOptimalBookingDays_CapsAtThree(t *testing.T) {
	forecasts := WeekdayForecasts([]time.Weekday{time.Friday})

	days := OptimalBookingDays(forecasts)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday"}, days)
}

func TestOptimalBookingDays_AllPeak(t *testing.T) {
	all := []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
	days := OptimalBookingDays(WeekdayForecasts(all))
	assert.Empty(t, days)
}
