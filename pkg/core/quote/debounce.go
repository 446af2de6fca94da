package quote

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid recompute triggers so a burst of answer
// edits runs the pipeline once, after the burst settles. Last write
// wins: only the most recently scheduled function runs. This is purely
// a performance aid; correctness does not depend on it.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer. An interval of 0 falls back to
// 300ms, the recommended recompute cadence during rapid input.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return &Debouncer{interval: interval}
}

// Trigger schedules fn to run after the quiet interval, replacing any
// previously scheduled function.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
