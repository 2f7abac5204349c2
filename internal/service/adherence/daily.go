package adherence

import (
	"github.com/medremind/reminder-engine/internal/domain"
)

// dayCount accumulates dose outcomes for one UTC calendar day.
type dayCount struct {
	total int
	taken int
}

func (c dayCount) rate() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.taken) / float64(c.total)
}

func (c dayCount) perfect() bool {
	return c.total > 0 && c.taken == c.total
}

// groupByDay buckets records by UTC calendar date.
func groupByDay(records []domain.AdherenceRecord) map[string]*dayCount {
	daily := make(map[string]*dayCount)
	for _, r := range records {
		key := domain.DateKey(r.Date)
		c, ok := daily[key]
		if !ok {
			c = &dayCount{}
			daily[key] = c
		}
		c.total++
		if r.Status == domain.StatusTaken {
			c.taken++
		}
	}
	return daily
}
