package countdown

import "time"

// ClockFormat is the hour:minute layout shown in the bottom bar.
const ClockFormat = "15:04"

// Clock is the wall-clock display source. It ticks once per second.
type Clock struct {
	now  time.Time
	slot Slot
}

// Start records now and schedules the first tick.
func (c *Clock) Start(now time.Time) Task {
	c.now = now
	return Task{Kind: TaskClock, Handle: c.slot.Replace(), After: time.Second}
}

// Due handles a delivered tick and returns the next one.
func (c *Clock) Due(h Handle, now time.Time) (Task, bool) {
	if !c.slot.Owns(h) {
		return Task{}, false
	}
	c.now = now
	return Task{Kind: TaskClock, Handle: h, After: time.Second}, true
}

// Stop cancels the pending tick.
func (c *Clock) Stop() {
	c.slot.Cancel()
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Format() string {
	return c.now.Format(ClockFormat)
}
