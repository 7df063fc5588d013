// Package countdown implements the per-task submission timer.
//
// The timer is a plain value type; the UI drives it with 1-second ticks
// and owns cancellation (stale ticks are dropped by the caller).
package countdown

import "fmt"

// Countdown is a second-granularity countdown clock. Started stays true
// after the clock runs out, so the UI can keep showing 00:00 instead of
// confusing an expired clock with one that never ran.
type Countdown struct {
	Remaining int
	Running   bool
	Started   bool
}

// Start resets the clock to limit seconds and starts it running.
// A non-positive limit is ignored: tasks without a time limit never tick.
func (c *Countdown) Start(limit int) {
	if limit <= 0 {
		return
	}
	c.Remaining = limit
	c.Running = true
	c.Started = true
}

// Tick advances the clock by one second. It is a no-op unless the clock
// is running with time remaining; reaching zero stops the clock without
// wrapping negative.
func (c *Countdown) Tick() {
	if !c.Running || c.Remaining <= 0 {
		return
	}
	c.Remaining--
	if c.Remaining == 0 {
		c.Running = false
	}
}

// Stop halts the clock, freezing Remaining at its current value.
func (c *Countdown) Stop() {
	c.Running = false
}

// Expired reports whether a started clock ran all the way down.
// A zero-value clock that never ran is not expired.
func (c Countdown) Expired() bool {
	return c.Started && !c.Running && c.Remaining == 0
}

// Urgent reports whether less than a minute remains on a running clock.
func (c Countdown) Urgent() bool {
	return c.Running && c.Remaining < 60
}

// Format renders seconds as MM:SS.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
