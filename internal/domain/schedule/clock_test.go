package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, Clock(9*60+30), c)

	c, err = ParseClock("00:00")
	assert.NoError(t, err)
	assert.Equal(t, Clock(0), c)

	c, err = ParseClock("23:59")
	assert.NoError(t, err)
	assert.Equal(t, Clock(23*60+59), c)
}

func TestParseClock_Invalid(t *testing.T) {
	for _, s := range []string{"", "9:30", "09:5", "24:00", "12:60", "ab:cd", "12-30", "12:300"} {
		_, err := ParseClock(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestClockAdd_WrapsAtMidnight(t *testing.T) {
	c, _ := ParseClock("23:45")
	assert.Equal(t, "00:15", c.Add(30).String())

	c, _ = ParseClock("00:15")
	assert.Equal(t, "23:45", c.Add(-30).String())
}

func TestClockString_ZeroPadded(t *testing.T) {
	c, _ := ParseClock("09:05")
	assert.Equal(t, "09:05", c.String())
	assert.Equal(t, "00:00", Clock(0).String())
}
