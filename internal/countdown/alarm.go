package countdown

import (
	"strings"
	"time"
)

// Delay is how long after Start the alarm fires. Only the listed values are
// offered; there is no free-form delay.
type Delay int

const (
	DelayNone Delay = iota
	Delay10s
	Delay30s
	Delay1m
	Delay5m
	Delay10m
)

var delayInfo = []struct {
	name string
	d    time.Duration
}{
	DelayNone: {"none", 0},
	Delay10s:  {"10s", 10 * time.Second},
	Delay30s:  {"30s", 30 * time.Second},
	Delay1m:   {"1m", time.Minute},
	Delay5m:   {"5m", 5 * time.Minute},
	Delay10m:  {"10m", 10 * time.Minute},
}

// Delays lists every selectable delay in display order.
func Delays() []Delay {
	return []Delay{DelayNone, Delay10s, Delay30s, Delay1m, Delay5m, Delay10m}
}

// ParseDelay maps a stored name back to a Delay. Unknown names mean no alarm.
func ParseDelay(s string) Delay {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Delays() {
		if delayInfo[d].name == s {
			return d
		}
	}
	return DelayNone
}

func (d Delay) valid() bool { return d >= DelayNone && d <= Delay10m }

func (d Delay) String() string {
	if !d.valid() {
		return delayInfo[DelayNone].name
	}
	return delayInfo[d].name
}

func (d Delay) Duration() time.Duration {
	if !d.valid() {
		return 0
	}
	return delayInfo[d].d
}

// Label is the human form used in the settings form.
func (d Delay) Label() string {
	switch d {
	case Delay10s:
		return "10 seconds"
	case Delay30s:
		return "30 seconds"
	case Delay1m:
		return "1 minute"
	case Delay5m:
		return "5 minutes"
	case Delay10m:
		return "10 minutes"
	}
	return "No alarm"
}

// AlarmState is the scheduler's externally visible state.
type AlarmState string

const (
	AlarmIdle    AlarmState = "idle"
	AlarmArmed   AlarmState = "armed"
	AlarmRinging AlarmState = "ringing"
)

// DefaultRingInterval spaces the repeats of the audible signal.
const DefaultRingInterval = 2 * time.Second

// Alarm fires once, a fixed delay after the countdown is started, and then
// rings until dismissed. It does not track elapsed time across pauses: every
// Arm starts the full delay again.
type Alarm struct {
	delay        Delay
	ringInterval time.Duration

	armed   bool
	ringing bool
	due     time.Time

	fire Slot
	ring Slot
}

// NewAlarm returns an idle alarm. A non-positive ringInterval falls back to
// DefaultRingInterval.
func NewAlarm(delay Delay, ringInterval time.Duration) *Alarm {
	if ringInterval <= 0 {
		ringInterval = DefaultRingInterval
	}
	return &Alarm{delay: delay, ringInterval: ringInterval}
}

func (a *Alarm) SetDelay(d Delay) {
	if !d.valid() {
		d = DelayNone
	}
	a.delay = d
}

func (a *Alarm) Delay() Delay { return a.delay }

// Arm schedules the fire delay after now, replacing any earlier schedule.
// Without a configured delay it does nothing.
func (a *Alarm) Arm(now time.Time) (Task, bool) {
	d := a.delay.Duration()
	if d <= 0 {
		return Task{}, false
	}
	h := a.fire.Replace()
	a.armed = true
	a.due = now.Add(d)
	return Task{Kind: TaskAlarm, Handle: h, After: d}, true
}

// Disarm cancels the pending fire. Ringing and the configured delay are kept.
func (a *Alarm) Disarm() {
	a.fire.Cancel()
	a.armed = false
	a.due = time.Time{}
}

// Fire runs when the fire schedule expires. Stale handles are ignored. On
// success the alarm starts ringing and the first ring is returned.
func (a *Alarm) Fire(h Handle) (Task, bool) {
	if !a.fire.Owns(h) {
		return Task{}, false
	}
	a.fire.Cancel()
	a.armed = false
	a.due = time.Time{}
	a.ringing = true
	return Task{Kind: TaskRing, Handle: a.ring.Replace()}, true
}

// Ring is one beat of the audible signal; it returns the next beat while the
// alarm keeps ringing.
func (a *Alarm) Ring(h Handle) (Task, bool) {
	if !a.ringing || !a.ring.Owns(h) {
		return Task{}, false
	}
	return Task{Kind: TaskRing, Handle: h, After: a.ringInterval}, true
}

// Dismiss silences the alarm. A later Arm still honors the same delay.
func (a *Alarm) Dismiss() bool {
	a.ring.Cancel()
	if !a.ringing {
		return false
	}
	a.ringing = false
	return true
}

func (a *Alarm) Armed() bool   { return a.armed }
func (a *Alarm) Ringing() bool { return a.ringing }

// Due is the instant the pending fire is expected, zero when not armed.
func (a *Alarm) Due() time.Time { return a.due }

func (a *Alarm) State() AlarmState {
	switch {
	case a.ringing:
		return AlarmRinging
	case a.armed:
		return AlarmArmed
	}
	return AlarmIdle
}
