package schedule

// Interval is a half-open [Start, End) span of a single day. End is not
// wrapped at midnight so that a booking ending at 24:00 still compares
// correctly against late slots.
type Interval struct {
	Start Clock
	End   Clock
}

// NewInterval builds the occupied interval of a booking that starts at
// start and runs for durationMin minutes.
func NewInterval(start Clock, durationMin int) Interval {
	return Interval{Start: start, End: start + Clock(durationMin)}
}

// Overlaps reports whether two half-open intervals intersect:
// [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// OverlapsAny reports whether i intersects at least one of the given
// intervals.
func OverlapsAny(i Interval, busy []Interval) bool {
	for _, b := range busy {
		if i.Overlaps(b) {
			return true
		}
	}
	return false
}
