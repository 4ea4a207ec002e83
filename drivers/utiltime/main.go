// Package utiltime is the "time" driver: human readable time differences.
package utiltime

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/goodglamm/g3util/core/driver"
	"github.com/goodglamm/g3util/util/xstrings"
)

type (
	// T is the time utility. It is stateless.
	T struct{}

	unit struct {
		seconds  int64
		singular string
		plural   string
	}
)

const (
	// DriverName is the registry name of the driver.
	DriverName = "time"

	MinuteInSeconds = int64(60)
	HourInSeconds   = 60 * MinuteInSeconds
	DayInSeconds    = 24 * HourInSeconds
	WeekInSeconds   = 7 * DayInSeconds
)

var (
	// Driver registers T as a shared instance.
	Driver = driver.NewSingleton(DriverName, func() any { return New() })

	// ErrInvalidTimestamp is returned for a negative from or a to lower than 1.
	ErrInvalidTimestamp = errors.New("valid timestamps expected to calculate difference")

	units = []unit{
		{WeekInSeconds, "week", "weeks"},
		{DayInSeconds, "day", "days"},
		{HourInSeconds, "hour", "hours"},
		{MinuteInSeconds, "minute", "minutes"},
	}
)

func New() *T {
	return &T{}
}

// HumanReadableDiff returns the difference between two unix timestamps,
// in seconds, as in "1 week 2 days 1 hour 1 minute 5 seconds".
//
// Units are consumed greedily from weeks down to minutes. Seconds are
// reported when some remain, or when no larger unit was reported.
func (t T) HumanReadableDiff(from, to int64) (string, error) {
	if from < 0 || to < 1 {
		return "", errors.Wrapf(ErrInvalidTimestamp, "from %d to %d", from, to)
	}
	return humanize(to - from), nil
}

// HumanReadableDiffTime is HumanReadableDiff for time values.
func (t T) HumanReadableDiffTime(from, to time.Time) (string, error) {
	return t.HumanReadableDiff(from.Unix(), to.Unix())
}

// HumanReadableDuration formats d, truncated to the second.
func (t T) HumanReadableDuration(d time.Duration) string {
	return humanize(int64(d / time.Second))
}

func humanize(diff int64) string {
	l := make([]string, 0, len(units)+1)
	for _, u := range units {
		if diff < u.seconds {
			continue
		}
		n := diff / u.seconds
		diff = diff % u.seconds
		l = append(l, xstrings.Count(n, u.singular, u.plural))
	}
	if diff != 0 || len(l) == 0 {
		l = append(l, xstrings.Count(diff, "second", "seconds"))
	}
	return strings.Join(l, " ")
}
