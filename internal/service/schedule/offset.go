package schedule

import (
	"strconv"
	"time"
)

// ParseOffset parses a compact reminder offset like "15m" or "2h" into a
// duration. An empty string, an unknown unit, or a malformed numeric prefix
// all degrade to zero: a broken offset must never block the on-time reminder,
// and validation at the regimen-edit boundary is expected to reject bad input
// before it reaches planning.
func ParseOffset(s string) time.Duration {
	if len(s) < 2 {
		return 0
	}

	value, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || value < 0 {
		return 0
	}

	switch s[len(s)-1] {
	case 'm':
		return time.Duration(value) * time.Minute
	case 'h':
		return time.Duration(value) * time.Hour
	default:
		return 0
	}
}
