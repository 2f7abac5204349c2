package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ResolveClock combines a "HH:mm" time-of-day with the calendar date of ref,
// in ref's location, seconds zeroed. It is used both for today's scheduling
// and for resolving historical dose instants.
func ResolveClock(clock string, ref time.Time) (time.Time, error) {
	hour, minute, err := splitClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location()), nil
}

func splitClock(clock string) (hour, minute int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time of day %q: expected HH:mm", clock)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in time of day %q", clock)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in time of day %q", clock)
	}

	return hour, minute, nil
}
