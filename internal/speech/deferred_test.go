package speech

import (
	"testing"
	"time"
)

func newDeferredFixture(t *testing.T) (*Deferred, *Memory, func(time.Duration)) {
	t.Helper()
	mem := &Memory{}
	ann := NewAnnouncer(mem, time.Second)
	d := NewDeferred(ann, 250*time.Millisecond)
	clock, advance := testClock(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	ann.SetClock(clock)
	d.SetClock(clock)
	return d, mem, advance
}

func TestDeferredSpeaksOnNextPumpOnly(t *testing.T) {
	d, mem, advance := newDeferredFixture(t)

	if !d.Schedule("combat", "Combat. 3 units.", true, nil) {
		t.Fatalf("expected schedule to accept")
	}
	// Same frame: nothing fires yet.
	if d.Pump() != 0 {
		t.Fatalf("expected nothing spoken on the scheduling frame")
	}
	advance(50 * time.Millisecond)
	if d.Pump() != 1 {
		t.Fatalf("expected one utterance on the next frame")
	}
	if mem.Last() != "Combat. 3 units." {
		t.Fatalf("unexpected utterance %q", mem.Last())
	}
	if d.Pending() != 0 {
		t.Fatalf("expected queue drained")
	}
}

func TestDeferredCooldownDropsDoubleSchedule(t *testing.T) {
	d, _, advance := newDeferredFixture(t)

	if !d.Schedule("combat", "Combat.", true, nil) {
		t.Fatalf("expected first schedule to accept")
	}
	if d.Schedule("combat", "Combat.", true, nil) {
		t.Fatalf("expected second schedule inside cooldown to be dropped")
	}
	advance(300 * time.Millisecond)
	d.Pump()
	if !d.Schedule("combat", "Combat.", true, nil) {
		t.Fatalf("expected schedule after cooldown to accept")
	}
}

func TestDeferredLivenessCheckDropsDeadDialog(t *testing.T) {
	d, mem, advance := newDeferredFixture(t)

	alive := true
	d.Schedule("policy", "Policy Selection.", true, func() bool { return alive })
	alive = false
	advance(50 * time.Millisecond)
	if d.Pump() != 0 {
		t.Fatalf("expected dead dialog announcement to be dropped")
	}
	if mem.Count() != 0 {
		t.Fatalf("expected no utterances, got %d", mem.Count())
	}
}

func TestDeferredCancelDiscardsPending(t *testing.T) {
	d, mem, advance := newDeferredFixture(t)

	d.Schedule("combat", "Combat.", true, nil)
	d.Schedule("alerts", "Notifications.", true, nil)
	d.Cancel("combat")
	advance(50 * time.Millisecond)
	if d.Pump() != 1 {
		t.Fatalf("expected only the surviving key to speak")
	}
	if mem.Last() != "Notifications." {
		t.Fatalf("unexpected utterance %q", mem.Last())
	}

	d.Schedule("combat2", "x", false, nil)
	d.CancelAll()
	advance(time.Second)
	if d.Pump() != 0 {
		t.Fatalf("expected CancelAll to drain the queue")
	}
}
