package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Weekday is an enumerated day of the week. Medication schedules match on this
// type instead of free-form day-name strings so that a differently cased or
// localized name can never silently disable a regimen.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "unknown"
	}
	return weekdayNames[w]
}

// DayName returns the capitalized label persisted in notification logs.
func (w Weekday) DayName() string {
	if w < Sunday || w > Saturday {
		return "Unknown"
	}
	return time.Weekday(w).String()
}

func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return Sunday, ErrInvalidWeekday
}

func (w Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseWeekday(name)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
