package builder

import (
	"sync"
	"time"
)

// Debouncer is a cancel-and-reschedule timer. Trigger replaces any pending
// run with a new one after the quiet period; only the latest function fires.
// A run that has already started is never interrupted.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn to run once the quiet period elapses with no further
// triggers. A pending (not yet fired) schedule is cancelled and replaced.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels a pending schedule. It does not wait for, or cancel, a run
// already in flight.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
