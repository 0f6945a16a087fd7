package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_EmptyDay(t *testing.T) {
	slots := DefaultGrid().Slots(nil)

	// 09:00 through 19:30 in 30-minute steps.
	require.Len(t, slots, 22)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "19:30", slots[len(slots)-1].Time)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Time)
	}
}

func TestSlots_BookingBlocksCoveredSlots(t *testing.T) {
	// 60-minute booking at 10:00 occupies 10:00 and 10:30 but leaves
	// 09:30 and 11:00 free.
	busy := []Interval{NewInterval(clock(t, "10:00"), 60)}

	slots := DefaultGrid().Slots(busy)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.True(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])
	assert.True(t, byTime["11:00"])
}

func TestSlots_ShortBookingStillBlocksSlot(t *testing.T) {
	// A 10-minute booking inside a slot makes the whole slot
	// unavailable.
	busy := []Interval{NewInterval(clock(t, "10:10"), 10)}

	slots := DefaultGrid().Slots(busy)
	for _, s := range slots {
		if s.Time == "10:00" {
			assert.False(t, s.Available)
			return
		}
	}
	t.Fatal("slot 10:00 missing")
}

func TestSlots_OrderedAndAligned(t *testing.T) {
	g := Grid{Start: clock(t, "09:00"), End: clock(t, "11:00"), StepMinutes: 30}
	slots := g.Slots(nil)

	require.Len(t, slots, 4)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, []string{
		slots[0].Time, slots[1].Time, slots[2].Time, slots[3].Time,
	})
}

func TestGrid_ClampTo(t *testing.T) {
	g := DefaultGrid().ClampTo(clock(t, "11:00"), clock(t, "15:00"))
	slots := g.Slots(nil)

	require.Len(t, slots, 8)
	assert.Equal(t, "11:00", slots[0].Time)
	assert.Equal(t, "14:30", slots[len(slots)-1].Time)
}

func TestGrid_ClampTo_EmptyIntersection(t *testing.T) {
	// Stylist working window entirely outside business hours.
	g := DefaultGrid().ClampTo(clock(t, "21:00"), clock(t, "23:00"))
	assert.Empty(t, g.Slots(nil))
}

func TestSlots_ZeroStepYieldsNothing(t *testing.T) {
	g := Grid{Start: 0, End: 60, StepMinutes: 0}
	assert.Nil(t, g.Slots(nil))
}
