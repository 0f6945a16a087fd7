package schedule

// Slot is a candidate start time within business hours, recomputed on
// every availability query.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Grid describes the slot layout of a business day.
type Grid struct {
	Start       Clock
	End         Clock
	StepMinutes int
}

// DefaultGrid mirrors the salon-wide fallback used when no settings row
// exists yet: 09:00-20:00 in 30-minute steps.
func DefaultGrid() Grid {
	return Grid{Start: 9 * 60, End: 20 * 60, StepMinutes: 30}
}

// ClampTo intersects the grid with a stylist's working window for the
// day. An empty intersection yields a grid that generates no slots.
func (g Grid) ClampTo(start, end Clock) Grid {
	out := g
	if start > out.Start {
		out.Start = start
	}
	if end < out.End {
		out.End = end
	}
	return out
}

// Slots generates the ordered slot sequence for the day. Every
// step-aligned start time in [g.Start, g.End) is emitted; a slot is
// unavailable when its [t, t+step) interval overlaps any busy interval,
// including busy intervals shorter than one step.
func (g Grid) Slots(busy []Interval) []Slot {
	if g.StepMinutes <= 0 {
		return nil
	}

	capHint := (int(g.End) - int(g.Start)) / g.StepMinutes
	if capHint < 0 {
		capHint = 0
	}
	slots := make([]Slot, 0, capHint)
	for t := g.Start; t < g.End; t += Clock(g.StepMinutes) {
		candidate := NewInterval(t, g.StepMinutes)
		slots = append(slots, Slot{
			Time:      t.String(),
			Available: !OverlapsAny(candidate, busy),
		})
	}

	return slots
}
