package countdown

import (
	"fmt"
	"time"
)

// Handle identifies one scheduled callback. The zero Handle is never issued.
type Handle uint64

// Slot holds at most one pending Handle. A callback delivered with a handle
// that is no longer pending was superseded and must be dropped.
type Slot struct {
	pending Handle
	issued  Handle
}

// Replace cancels whatever is pending and issues a fresh handle.
func (s *Slot) Replace() Handle {
	s.issued++
	s.pending = s.issued
	return s.pending
}

// Cancel clears the pending handle.
func (s *Slot) Cancel() {
	s.pending = 0
}

// Pending returns the pending handle, or zero.
func (s *Slot) Pending() Handle {
	return s.pending
}

// Owns reports whether h is the pending handle.
func (s *Slot) Owns(h Handle) bool {
	return h != 0 && h == s.pending
}

// TaskKind tells the scheduling layer which component a Task belongs to.
type TaskKind int

const (
	TaskClock TaskKind = iota
	TaskCountdown
	TaskAlarm
	TaskRing
)

var taskKindNames = map[TaskKind]string{
	TaskClock:     "clock",
	TaskCountdown: "countdown",
	TaskAlarm:     "alarm",
	TaskRing:      "ring",
}

func (k TaskKind) String() string {
	if name, ok := taskKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TaskKind(%d)", int(k))
}

// Task asks the scheduling layer to hand Handle back to the session after
// After has elapsed.
type Task struct {
	Kind   TaskKind
	Handle Handle
	After  time.Duration
}
