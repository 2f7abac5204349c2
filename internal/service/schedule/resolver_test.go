package schedule

import (
	"testing"
	"time"
)

func TestResolveClock(t *testing.T) {
	ref := time.Date(2025, time.March, 14, 22, 11, 33, 500, time.UTC)

	tests := []struct {
		name     string
		clock    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "morning",
			clock:    "08:30",
			expected: time.Date(2025, time.March, 14, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "midnight",
			clock:    "00:00",
			expected: time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "last minute of day",
			clock:    "23:59",
			expected: time.Date(2025, time.March, 14, 23, 59, 0, 0, time.UTC),
		},
		{
			name:    "hour out of range",
			clock:   "24:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			clock:   "10:60",
			wantErr: true,
		},
		{
			name:    "missing separator",
			clock:   "0830",
			wantErr: true,
		},
		{
			name:    "empty",
			clock:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveClock(tt.clock, ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveClock(%q) expected error, got %v", tt.clock, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveClock(%q) unexpected error: %v", tt.clock, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ResolveClock(%q) = %v, want %v", tt.clock, got, tt.expected)
			}
		})
	}
}

func TestResolveClockKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	ref := time.Date(2025, time.June, 1, 15, 0, 0, 0, loc)

	got, err := ResolveClock("09:15", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Location() != loc {
		t.Errorf("location = %v, want %v", got.Location(), loc)
	}
	if got.Hour() != 9 || got.Minute() != 15 || got.Second() != 0 {
		t.Errorf("clock = %02d:%02d:%02d, want 09:15:00", got.Hour(), got.Minute(), got.Second())
	}
}
