package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedTime is returned for any time string that is not a
// zero-padded, in-range HH:MM value.
var ErrMalformedTime = errors.New("malformed time, expected HH:MM")

// MinutesPerDay is the number of minutes on a wall clock day.
const MinutesPerDay = 24 * 60

var timeOfDayPattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// ParseTimeOfDay converts an "HH:MM" string to minutes since midnight.
// Hours must be in [0,23] and minutes in [0,59]; anything else fails
// with ErrMalformedTime.
func ParseTimeOfDay(s string) (int, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	return hour*60 + minute, nil
}

// ElapsedMinutes returns the minutes from start to end, both given as
// minutes since midnight. A negative difference is interpreted as end
// falling on the following day and wraps past midnight. This is the
// duration semantics only; connection feasibility never wraps.
func ElapsedMinutes(start, end int) int {
	d := end - start
	if d < 0 {
		d += MinutesPerDay
	}
	return d
}

// FormatTimeOfDay renders minutes since midnight back as "HH:MM".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
