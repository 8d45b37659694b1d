package countdown

import (
	"fmt"
	"strconv"
	"strings"
)

// Timer is the countdown state: configured total, remaining seconds and
// whether it is running. Remaining only decreases while running and never
// drops below zero.
type Timer struct {
	total     int
	remaining int
	running   bool
}

// NewTimer returns a stopped timer configured for minutes:seconds.
func NewTimer(minutes, seconds int) *Timer {
	t := &Timer{}
	t.Configure(minutes, seconds)
	return t
}

// Configure sets the duration. Negative values become zero and seconds are
// clamped to [0,59]. Editing the duration always stops the countdown and
// restores remaining to the new total.
func (t *Timer) Configure(minutes, seconds int) {
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	if seconds > 59 {
		seconds = 59
	}
	t.running = false
	t.total = minutes*60 + seconds
	t.remaining = t.total
}

// Start begins counting down. It reports false when already running or when
// nothing is left to count.
func (t *Timer) Start() bool {
	if t.running || t.remaining == 0 {
		return false
	}
	t.running = true
	return true
}

// Pause stops counting. It reports false when the timer was not running.
func (t *Timer) Pause() bool {
	if !t.running {
		return false
	}
	t.running = false
	return true
}

func (t *Timer) Reset() {
	t.running = false
	t.remaining = t.total
}

// Tick decrements remaining by one second while running. It reports true on
// the tick that reaches zero, which also stops the timer.
func (t *Timer) Tick() bool {
	if !t.running || t.remaining == 0 {
		return false
	}
	t.remaining--
	if t.remaining == 0 {
		t.running = false
		return true
	}
	return false
}

func (t *Timer) Total() int     { return t.total }
func (t *Timer) Remaining() int { return t.remaining }
func (t *Timer) Running() bool  { return t.running }

// Progress is the elapsed fraction of the configured duration.
func (t *Timer) Progress() float64 {
	if t.total == 0 {
		return 1
	}
	return float64(t.total-t.remaining) / float64(t.total)
}

// FormatClock renders seconds as MM:SS. Minutes keep growing past 99.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ParseDuration turns free-form minute and second fields into numbers.
// Anything that is not a non-negative integer is read as zero.
func ParseDuration(minutes, seconds string) (int, int) {
	return coerce(minutes), coerce(seconds)
}

func coerce(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
