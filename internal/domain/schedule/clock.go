package schedule

import (
	"fmt"

	"github.com/jmkbeauty/salon-booking/internal/httperr"
)

const minutesPerDay = 24 * 60

// Clock is a naive time of day in minutes since midnight. All slot
// arithmetic is plain integer math; no timezone conversion is involved.
type Clock int

// ParseClock parses a zero-padded "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	if len(s) != 5 || s[2] != ':' || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return Clock(h*60 + m), nil
}

// Add moves the clock forward n minutes, wrapping at 24:00.
func (c Clock) Add(n int) Clock {
	v := (int(c) + n) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return Clock(v)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
