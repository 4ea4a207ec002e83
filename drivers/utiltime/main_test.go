package utiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanReadableDiff(t *testing.T) {
	tests := []struct {
		from     int64
		to       int64
		expected string
	}{
		{0, 59, "59 seconds"},
		{0, 60, "1 minute"},
		{0, 61, "1 minute 1 second"},
		{0, 3661, "1 hour 1 minute 1 second"},
		{0, 7200, "2 hours"},
		{100, 101, "1 second"},
		{5, 5, "0 seconds"},
		{0, WeekInSeconds, "1 week"},
		{0, 2*WeekInSeconds + DayInSeconds + 2*MinuteInSeconds, "2 weeks 1 day 2 minutes"},
		{1000, 1000 + 3*DayInSeconds + 4*HourInSeconds + 59, "3 days 4 hours 59 seconds"},
	}
	tm := New()
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			s, err := tm.HumanReadableDiff(test.from, test.to)
			require.NoError(t, err)
			assert.Equal(t, test.expected, s)
		})
	}
}

func TestHumanReadableDiffInvalid(t *testing.T) {
	tm := New()
	for _, c := range [][2]int64{{-1, 10}, {0, 0}, {10, -5}} {
		_, err := tm.HumanReadableDiff(c[0], c[1])
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	}
}

func TestHumanReadableDiffTime(t *testing.T) {
	from := time.Unix(1700000000, 0)
	s, err := New().HumanReadableDiffTime(from, from.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "1 hour 30 minutes", s)
}

func TestHumanReadableDuration(t *testing.T) {
	assert.Equal(t, "1 day 1 second", New().HumanReadableDuration(24*time.Hour+time.Second+300*time.Millisecond))
}
