package countdown

import "time"

// EventType names what happened during a Session transition.
type EventType string

const (
	EventStarted    EventType = "started"
	EventPaused     EventType = "paused"
	EventReset      EventType = "reset"
	EventExpired    EventType = "expired"
	EventAlarmFired EventType = "alarm_fired"
	EventRing       EventType = "ring"
	EventDismissed  EventType = "dismissed"
	EventConfigured EventType = "configured"
)

// Event reports a transition to the presentation layer.
type Event struct {
	Type      EventType
	Remaining int
	At        time.Time
}

// Result is what a Session transition asks of its caller: tasks to schedule
// and events to react to.
type Result struct {
	Tasks  []Task
	Events []Event
}

func (r *Result) schedule(t Task) { r.Tasks = append(r.Tasks, t) }

func (r *Result) emit(typ EventType, remaining int, at time.Time) {
	r.Events = append(r.Events, Event{Type: typ, Remaining: remaining, At: at})
}

// Has reports whether an event of typ was emitted.
func (r Result) Has(typ EventType) bool {
	for _, e := range r.Events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

// Session wires the clock, the countdown timer and the alarm together. The
// alarm is armed on every successful start and disarmed on pause, reset and
// duration edits. Countdown and alarm are otherwise independent: the countdown
// reaching zero never silences a ringing alarm, and an alarm due after the
// countdown ended still rings.
//
// A Session is not safe for concurrent use; it expects to be driven from a
// single event loop.
type Session struct {
	clock Clock
	timer *Timer
	alarm *Alarm
	tick  Slot
}

// Options configures a new Session.
type Options struct {
	Minutes      int
	Seconds      int
	Delay        Delay
	RingInterval time.Duration
}

func NewSession(opts Options) *Session {
	return &Session{
		timer: NewTimer(opts.Minutes, opts.Seconds),
		alarm: NewAlarm(opts.Delay, opts.RingInterval),
	}
}

func (s *Session) Timer() *Timer { return s.timer }
func (s *Session) Alarm() *Alarm { return s.alarm }
func (s *Session) Clock() *Clock { return &s.clock }

// Open starts the wall clock.
func (s *Session) Open(now time.Time) Result {
	var r Result
	r.schedule(s.clock.Start(now))
	return r
}

// Start begins the countdown and arms the alarm relative to now.
func (s *Session) Start(now time.Time) Result {
	var r Result
	if !s.timer.Start() {
		return r
	}
	r.schedule(Task{Kind: TaskCountdown, Handle: s.tick.Replace(), After: time.Second})
	if t, ok := s.alarm.Arm(now); ok {
		r.schedule(t)
	}
	r.emit(EventStarted, s.timer.Remaining(), now)
	return r
}

// Pause stops the countdown and cancels the pending alarm fire. The alarm
// delay is kept; the next Start arms it again from scratch.
func (s *Session) Pause(now time.Time) Result {
	var r Result
	if !s.timer.Pause() {
		return r
	}
	s.tick.Cancel()
	s.alarm.Disarm()
	r.emit(EventPaused, s.timer.Remaining(), now)
	return r
}

// Toggle starts a stopped countdown or pauses a running one.
func (s *Session) Toggle(now time.Time) Result {
	if s.timer.Running() {
		return s.Pause(now)
	}
	return s.Start(now)
}

// Reset restores the configured duration and fully disarms and silences the
// alarm.
func (s *Session) Reset(now time.Time) Result {
	var r Result
	s.timer.Reset()
	s.tick.Cancel()
	s.alarm.Disarm()
	if s.alarm.Dismiss() {
		r.emit(EventDismissed, s.timer.Remaining(), now)
	}
	r.emit(EventReset, s.timer.Remaining(), now)
	return r
}

// Configure changes the duration. A running countdown is stopped, which
// cancels its tick and pending alarm fire like a pause would.
func (s *Session) Configure(minutes, seconds int, now time.Time) Result {
	var r Result
	if s.timer.Running() {
		s.tick.Cancel()
		s.alarm.Disarm()
		r.emit(EventPaused, s.timer.Remaining(), now)
	}
	s.timer.Configure(minutes, seconds)
	r.emit(EventConfigured, s.timer.Remaining(), now)
	return r
}

// SetDelay changes the alarm delay used by the next Start.
func (s *Session) SetDelay(d Delay) {
	s.alarm.SetDelay(d)
}

// Dismiss silences a ringing alarm.
func (s *Session) Dismiss(now time.Time) Result {
	var r Result
	if s.alarm.Dismiss() {
		r.emit(EventDismissed, s.timer.Remaining(), now)
	}
	return r
}

// Due dispatches a task the scheduling layer delivered. Superseded tasks are
// dropped without effect.
func (s *Session) Due(t Task, now time.Time) Result {
	var r Result
	switch t.Kind {
	case TaskClock:
		if next, ok := s.clock.Due(t.Handle, now); ok {
			r.schedule(next)
		}
	case TaskCountdown:
		if !s.tick.Owns(t.Handle) {
			return r
		}
		if s.timer.Tick() {
			s.tick.Cancel()
			r.emit(EventExpired, 0, now)
			return r
		}
		if s.timer.Running() {
			r.schedule(Task{Kind: TaskCountdown, Handle: t.Handle, After: time.Second})
		}
	case TaskAlarm:
		if ring, ok := s.alarm.Fire(t.Handle); ok {
			r.emit(EventAlarmFired, s.timer.Remaining(), now)
			r.schedule(ring)
		}
	case TaskRing:
		if next, ok := s.alarm.Ring(t.Handle); ok {
			r.emit(EventRing, s.timer.Remaining(), now)
			r.schedule(next)
		}
	}
	return r
}

// Close tears the session down: every pending callback is cancelled and the
// alarm stops ringing.
func (s *Session) Close() {
	s.clock.Stop()
	s.tick.Cancel()
	s.alarm.Disarm()
	s.alarm.Dismiss()
	s.timer.Pause()
}
