package countdown

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 2, 9, 55, 0, 0, time.UTC)

func TestParseDelay(t *testing.T) {
	for _, d := range Delays() {
		if got := ParseDelay(d.String()); got != d {
			t.Errorf("ParseDelay(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if ParseDelay("7s") != DelayNone {
		t.Fatal("unknown delay should parse as none")
	}
	if ParseDelay(" 5M ") != Delay5m {
		t.Fatal("parse should ignore case and spaces")
	}
}

func TestDelayDurations(t *testing.T) {
	want := []time.Duration{0, 10 * time.Second, 30 * time.Second, time.Minute, 5 * time.Minute, 10 * time.Minute}
	for i, d := range Delays() {
		if d.Duration() != want[i] {
			t.Errorf("%v.Duration() = %v, want %v", d, d.Duration(), want[i])
		}
	}
	if Delay(42).Duration() != 0 || Delay(42).String() != "none" {
		t.Fatal("out of range delay should behave like none")
	}
}

func TestArmWithoutDelay(t *testing.T) {
	a := NewAlarm(DelayNone, 0)
	if _, ok := a.Arm(t0); ok {
		t.Fatal("arm without delay should be a no-op")
	}
	if a.State() != AlarmIdle {
		t.Fatalf("state %s, want idle", a.State())
	}
}

func TestArmSchedulesOneFire(t *testing.T) {
	a := NewAlarm(Delay30s, 0)
	task, ok := a.Arm(t0)
	if !ok {
		t.Fatal("arm should schedule")
	}
	if task.Kind != TaskAlarm || task.After != 30*time.Second {
		t.Fatalf("unexpected task %+v", task)
	}
	if !a.Due().Equal(t0.Add(30 * time.Second)) {
		t.Fatalf("due %v", a.Due())
	}
	if a.State() != AlarmArmed {
		t.Fatalf("state %s, want armed", a.State())
	}
}

func TestRearmSupersedesPreviousFire(t *testing.T) {
	a := NewAlarm(Delay10s, 0)
	first, _ := a.Arm(t0)
	second, _ := a.Arm(t0.Add(5 * time.Second))
	if first.Handle == second.Handle {
		t.Fatal("re-arming should issue a new handle")
	}
	if _, ok := a.Fire(first.Handle); ok {
		t.Fatal("stale fire should be ignored")
	}
	if a.Ringing() {
		t.Fatal("stale fire should not ring")
	}
	if _, ok := a.Fire(second.Handle); !ok {
		t.Fatal("current fire should ring")
	}
}

func TestDisarmKeepsDelayAndRinging(t *testing.T) {
	a := NewAlarm(Delay10s, 0)
	task, _ := a.Arm(t0)
	a.Fire(task.Handle)
	a.Arm(t0)
	a.Disarm()
	if !a.Ringing() {
		t.Fatal("disarm must not affect ringing")
	}
	if a.Delay() != Delay10s {
		t.Fatal("disarm must keep the delay")
	}
	if a.Armed() {
		t.Fatal("should not be armed")
	}
}

func TestFireRingDismiss(t *testing.T) {
	a := NewAlarm(Delay1m, 3*time.Second)
	task, _ := a.Arm(t0)
	ring, ok := a.Fire(task.Handle)
	if !ok || ring.Kind != TaskRing {
		t.Fatalf("fire: ok=%v task=%+v", ok, ring)
	}
	if a.State() != AlarmRinging {
		t.Fatalf("state %s, want ringing", a.State())
	}
	if _, ok := a.Fire(task.Handle); ok {
		t.Fatal("a fire handle is single use")
	}
	next, ok := a.Ring(ring.Handle)
	if !ok || next.After != 3*time.Second {
		t.Fatalf("ring: ok=%v task=%+v", ok, next)
	}
	if !a.Dismiss() {
		t.Fatal("dismiss should report it silenced the alarm")
	}
	if _, ok := a.Ring(next.Handle); ok {
		t.Fatal("ring after dismiss should stop")
	}
	if a.State() != AlarmIdle {
		t.Fatalf("state %s, want idle", a.State())
	}
	if a.Delay() != Delay1m {
		t.Fatal("dismiss must keep the delay")
	}
	if a.Dismiss() {
		t.Fatal("second dismiss should be a no-op")
	}
}

func TestSlotHandles(t *testing.T) {
	var s Slot
	if s.Owns(0) {
		t.Fatal("zero handle is never owned")
	}
	h1 := s.Replace()
	h2 := s.Replace()
	if h1 == h2 || s.Owns(h1) || !s.Owns(h2) {
		t.Fatalf("h1=%d h2=%d pending=%d", h1, h2, s.Pending())
	}
	s.Cancel()
	if s.Owns(h2) {
		t.Fatal("cancel should clear the pending handle")
	}
	if h3 := s.Replace(); h3 == h2 {
		t.Fatal("handles must not be reused after cancel")
	}
}

func TestTaskKindString(t *testing.T) {
	if TaskRing.String() != "ring" || TaskKind(9).String() != "TaskKind(9)" {
		t.Fatal("unexpected task kind names")
	}
}
