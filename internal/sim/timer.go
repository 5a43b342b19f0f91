package sim

import (
	"fmt"
	"time"
)

// Timer is a repeating fixed-interval timer over simulated time.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewTimer creates a timer that fires every period. Panics if period <= 0.
func NewTimer(period time.Duration) Timer {
	if period <= 0 {
		panic(fmt.Sprintf("sim: invalid timer period %s", period))
	}
	return Timer{period: period}
}

// Tick advances the timer by dt and reports whether it elapsed.
// A large dt fires at most once; the surplus carries over.
func (t *Timer) Tick(dt time.Duration) bool {
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed -= t.period
	if t.elapsed >= t.period {
		// Never queue more than one pending fire.
		t.elapsed = t.period - 1
	}
	return true
}

// Reset clears the accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Period returns the firing interval.
func (t *Timer) Period() time.Duration {
	return t.period
}
