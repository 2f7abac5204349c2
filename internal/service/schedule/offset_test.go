package schedule

import (
	"testing"
	"time"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{
			name:     "minutes",
			input:    "15m",
			expected: 15 * time.Minute,
		},
		{
			name:     "hours",
			input:    "2h",
			expected: 2 * time.Hour,
		},
		{
			name:     "single minute",
			input:    "1m",
			expected: time.Minute,
		},
		{
			name:     "empty string",
			input:    "",
			expected: 0,
		},
		{
			name:     "unknown unit",
			input:    "5x",
			expected: 0,
		},
		{
			name:     "unit only",
			input:    "m",
			expected: 0,
		},
		{
			name:     "malformed numeric prefix",
			input:    "abcm",
			expected: 0,
		},
		{
			name:     "negative value",
			input:    "-5m",
			expected: 0,
		},
		{
			name:     "seconds not supported",
			input:    "30s",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOffset(tt.input)
			if got != tt.expected {
				t.Errorf("ParseOffset(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseOffsetMillisecondEquivalents(t *testing.T) {
	// The legacy scheduler spoke milliseconds; the offsets must agree.
	if ms := ParseOffset("15m").Milliseconds(); ms != 900000 {
		t.Errorf("15m = %d ms, want 900000", ms)
	}
	if ms := ParseOffset("2h").Milliseconds(); ms != 7200000 {
		t.Errorf("2h = %d ms, want 7200000", ms)
	}
}
