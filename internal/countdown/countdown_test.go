package countdown

import "testing"

func TestStartAndRunToZero(t *testing.T) {
	var c Countdown
	c.Start(600)

	if !c.Running || c.Remaining != 600 {
		t.Fatalf("after Start: remaining=%d running=%v, want 600 running", c.Remaining, c.Running)
	}

	for i := 0; i < 600; i++ {
		c.Tick()
	}

	if c.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", c.Remaining)
	}
	if c.Running {
		t.Error("clock still running after reaching zero")
	}
	if !c.Expired() {
		t.Error("Expired() = false, want true")
	}
}

func TestTickNeverWrapsNegative(t *testing.T) {
	var c Countdown
	c.Start(1)
	c.Tick()
	c.Tick()
	c.Tick()

	if c.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", c.Remaining)
	}
}

func TestStopFreezesRemaining(t *testing.T) {
	var c Countdown
	c.Start(600)
	for i := 0; i < 300; i++ {
		c.Tick()
	}
	c.Stop()

	if c.Remaining != 300 {
		t.Errorf("Remaining = %d, want 300", c.Remaining)
	}
	if c.Running {
		t.Error("clock running after Stop")
	}
	if c.Expired() {
		t.Error("a stopped clock with time left is not expired")
	}

	// Ticks after a stop must not move the clock.
	c.Tick()
	if c.Remaining != 300 {
		t.Errorf("Remaining after stopped tick = %d, want 300", c.Remaining)
	}
}

func TestStartIgnoresNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -5} {
		var c Countdown
		c.Start(limit)
		if c.Running {
			t.Errorf("Start(%d) started the clock", limit)
		}
	}
}

func TestTickOnIdleClockIsNoop(t *testing.T) {
	var c Countdown
	c.Tick()
	if c.Remaining != 0 || c.Running {
		t.Errorf("idle tick mutated clock: %+v", c)
	}
}

func TestExpiredRequiresStartedClock(t *testing.T) {
	var idle Countdown
	if idle.Expired() {
		t.Error("never-started clock reports expired")
	}

	var c Countdown
	c.Start(2)
	c.Tick()
	c.Tick()

	if !c.Started {
		t.Error("Started = false after running to zero, want true")
	}
	if !c.Expired() {
		t.Error("Expired() = false after running to zero, want true")
	}
	// An expired clock keeps displaying 00:00 rather than vanishing.
	if got := Format(c.Remaining); got != "00:00" {
		t.Errorf("expired clock formats as %q, want 00:00", got)
	}
}

func TestUrgent(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		running   bool
		want      bool
	}{
		{"running above a minute", 61, true, false},
		{"running under a minute", 59, true, true},
		{"stopped under a minute", 30, false, false},
	}

	for _, tt := range tests {
		c := Countdown{Remaining: tt.remaining, Running: tt.running}
		if got := c.Urgent(); got != tt.want {
			t.Errorf("%s: Urgent() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{600, "10:00"},
		{1800, "30:00"},
		{-1, "00:00"},
	}

	for _, tt := range tests {
		if got := Format(tt.seconds); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
