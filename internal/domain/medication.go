package domain

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	clockPattern  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	offsetPattern = regexp.MustCompile(`^[0-9]+[mh]$`)
)

// DosageTime is one scheduled time-of-day for a medication, with its own
// reminder offsets. Offsets use the compact "15m" / "2h" form.
type DosageTime struct {
	Clock        string `json:"time"`
	RemindBefore string `json:"remindBefore,omitempty"`
	RemindAfter  string `json:"remindAfter,omitempty"`
}

func (d DosageTime) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Clock, validation.Required, validation.Match(clockPattern).Error("must be HH:mm")),
		validation.Field(&d.RemindBefore, validation.Match(offsetPattern).Error("must be a non-negative offset like 15m or 2h")),
		validation.Field(&d.RemindAfter, validation.Match(offsetPattern).Error("must be a non-negative offset like 15m or 2h")),
	)
}

// Medication is owned by a user and mutated by regimen-edit and dose-logging
// flows outside this engine. The scheduler and analytics read it only.
type Medication struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	DosageTimes      []DosageTime      `json:"dosageTimes"`
	ActiveDays       []Weekday         `json:"activeDays"`
	AdherenceHistory []AdherenceRecord `json:"adherenceHistory,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

func (m *Medication) ActiveOn(day Weekday) bool {
	for _, d := range m.ActiveDays {
		if d == day {
			return true
		}
	}
	return false
}

// Validate guards the write boundary. Malformed clocks or offsets are rejected
// here rather than degraded to zero offsets at planning time.
func (m *Medication) Validate() error {
	if err := validation.ValidateStruct(m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.UserID, validation.Required),
		validation.Field(&m.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.DosageTimes, validation.Required),
		validation.Field(&m.ActiveDays, validation.Required),
	); err != nil {
		return err
	}
	for _, dt := range m.DosageTimes {
		if err := dt.Validate(); err != nil {
			return err
		}
	}
	for _, day := range m.ActiveDays {
		if day < Sunday || day > Saturday {
			return ErrInvalidWeekday
		}
	}
	return nil
}
