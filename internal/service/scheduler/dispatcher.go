package scheduler

import (
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Dispatcher is the in-process timer arena. Each pending reminder owns one
// timer, addressed by its idempotency key so a re-run of the same day replaces
// instead of stacking. Timers do not survive a process restart; re-running the
// day rebuilds them from the plan.
type Dispatcher struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	now    func() time.Time
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		timers: make(map[string]*time.Timer),
		now:    time.Now,
	}
}

// Schedule arms a timer that calls fire at instant at. A timer already armed
// under the same key is stopped and replaced. An instant in the past fires
// immediately.
func (d *Dispatcher) Schedule(key string, at time.Time, fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.timers[key]; ok {
		existing.Stop()
	}

	delay := at.Sub(d.now())
	if delay < 0 {
		delay = 0
	}

	d.timers[key] = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()

		fire()
	})

	slog.Debug("reminder timer armed",
		slog.String("key", key),
		slog.Time("at", at),
		slog.Duration("delay", delay),
	)
}

// Cancel stops the timer under key. It reports whether a timer was pending.
func (d *Dispatcher) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	timer, ok := d.timers[key]
	if !ok {
		return false
	}

	timer.Stop()
	delete(d.timers, key)
	return true
}

// CancelPrefix stops every pending timer whose key starts with prefix and
// returns how many were cancelled. Used to clear a user's day before a re-plan.
func (d *Dispatcher) CancelPrefix(prefix string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	cancelled := 0
	for key, timer := range d.timers {
		if strings.HasPrefix(key, prefix) {
			timer.Stop()
			delete(d.timers, key)
			cancelled++
		}
	}

	return cancelled
}

// Pending returns the number of armed timers.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.timers)
}

// Stop cancels every pending timer. Called on shutdown.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}
