package countdown

import "testing"

// ============================================================
// Timer
// ============================================================

func TestConfigureThenResetRestoresTotal(t *testing.T) {
	for m := 0; m <= 3; m++ {
		for _, s := range []int{0, 1, 30, 59} {
			tm := NewTimer(0, 0)
			tm.Configure(m, s)
			tm.Reset()
			if tm.Remaining() != m*60+s {
				t.Fatalf("Configure(%d,%d)+Reset: remaining %d, want %d", m, s, tm.Remaining(), m*60+s)
			}
		}
	}
}

func TestConfigureClampsInput(t *testing.T) {
	tests := []struct {
		m, s int
		want int
	}{
		{-5, 10, 10},
		{2, -1, 120},
		{1, 75, 119},
		{-1, -1, 0},
	}
	for _, tt := range tests {
		tm := NewTimer(tt.m, tt.s)
		if tm.Total() != tt.want || tm.Remaining() != tt.want {
			t.Errorf("NewTimer(%d,%d): total %d remaining %d, want %d", tt.m, tt.s, tm.Total(), tm.Remaining(), tt.want)
		}
	}
}

func TestConfigureStopsRunningTimer(t *testing.T) {
	tm := NewTimer(1, 0)
	tm.Start()
	tm.Tick()
	tm.Configure(2, 0)
	if tm.Running() {
		t.Fatal("editing the duration should stop the countdown")
	}
	if tm.Remaining() != 120 {
		t.Fatalf("remaining %d, want 120", tm.Remaining())
	}
}

func TestStartTickToZero(t *testing.T) {
	tm := NewTimer(0, 7)
	if !tm.Start() {
		t.Fatal("start should succeed")
	}
	n := tm.Remaining()
	expired := false
	for i := 0; i < n; i++ {
		expired = tm.Tick()
	}
	if !expired {
		t.Fatal("last tick should report expiry")
	}
	if tm.Running() || tm.Remaining() != 0 {
		t.Fatalf("running=%v remaining=%d after %d ticks", tm.Running(), tm.Remaining(), n)
	}
	if tm.Tick() {
		t.Fatal("tick after expiry should be a no-op")
	}
	if tm.Remaining() != 0 {
		t.Fatal("remaining went below zero")
	}
}

func TestStartWithNothingLeftIsInert(t *testing.T) {
	tm := NewTimer(0, 0)
	if tm.Start() {
		t.Fatal("start with zero remaining should be a no-op")
	}
	if tm.Running() {
		t.Fatal("should not be running")
	}
}

func TestStartWhenRunning(t *testing.T) {
	tm := NewTimer(1, 0)
	tm.Start()
	if tm.Start() {
		t.Fatal("second start should be a no-op")
	}
}

func TestPauseWhenNotRunning(t *testing.T) {
	tm := NewTimer(1, 0)
	if tm.Pause() {
		t.Fatal("pause on a stopped timer should be a no-op")
	}
}

func TestTickWhilePausedDoesNothing(t *testing.T) {
	tm := NewTimer(0, 5)
	tm.Start()
	tm.Tick()
	tm.Pause()
	tm.Tick()
	if tm.Remaining() != 4 {
		t.Fatalf("remaining %d, want 4", tm.Remaining())
	}
}

func TestResetStops(t *testing.T) {
	tm := NewTimer(0, 5)
	tm.Start()
	tm.Tick()
	tm.Reset()
	if tm.Running() || tm.Remaining() != 5 {
		t.Fatalf("running=%v remaining=%d", tm.Running(), tm.Remaining())
	}
}

func TestProgress(t *testing.T) {
	tm := NewTimer(0, 4)
	if tm.Progress() != 0 {
		t.Fatalf("progress %v, want 0", tm.Progress())
	}
	tm.Start()
	tm.Tick()
	if tm.Progress() != 0.25 {
		t.Fatalf("progress %v, want 0.25", tm.Progress())
	}
	if NewTimer(0, 0).Progress() != 1 {
		t.Fatal("empty timer should report full progress")
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{300, "05:00"},
		{3599, "59:59"},
		{6000, "100:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		m, s         string
		wantM, wantS int
	}{
		{"5", "0", 5, 0},
		{" 12 ", "30", 12, 30},
		{"abc", "", 0, 0},
		{"-3", "-7", 0, 0},
		{"2.5", "10", 0, 10},
	}
	for _, tt := range tests {
		m, s := ParseDuration(tt.m, tt.s)
		if m != tt.wantM || s != tt.wantS {
			t.Errorf("ParseDuration(%q,%q) = %d,%d want %d,%d", tt.m, tt.s, m, s, tt.wantM, tt.wantS)
		}
	}
}
