package speech

import (
	"testing"
	"time"
)

func testClock(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func TestAnnounceDebouncesIdenticalTextPerKey(t *testing.T) {
	mem := &Memory{}
	a := NewAnnouncer(mem, 1500*time.Millisecond)
	clock, advance := testClock(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	a.SetClock(clock)

	if !a.Announce("options", "Master volume 80%", false) {
		t.Fatalf("expected first announcement to speak")
	}
	if a.Announce("options", "Master volume 80%", false) {
		t.Fatalf("expected identical announcement within TTL to be dropped")
	}
	if mem.Count() != 1 {
		t.Fatalf("expected 1 utterance, got %d", mem.Count())
	}

	// Different text on the same key speaks.
	if !a.Announce("options", "Master volume 70%", false) {
		t.Fatalf("expected changed text to speak")
	}

	// Same text on a different key speaks: screens never suppress each
	// other.
	if !a.Announce("main_menu", "Master volume 70%", false) {
		t.Fatalf("expected different key to speak")
	}

	// After the TTL the repeat goes through again.
	advance(2 * time.Second)
	if !a.Announce("options", "Master volume 70%", false) {
		t.Fatalf("expected repeat after TTL to speak")
	}
}

func TestSayBypassesDebounce(t *testing.T) {
	mem := &Memory{}
	a := NewAnnouncer(mem, time.Second)
	clock, _ := testClock(time.Now())
	a.SetClock(clock)

	a.Announce("detail", "Subtitles on", false)
	if !a.Say("detail", "Subtitles on", true) {
		t.Fatalf("expected explicit Say to speak despite debounce")
	}
	if mem.Count() != 2 {
		t.Fatalf("expected 2 utterances, got %d", mem.Count())
	}
}

func TestForgetDropsDebounceEntry(t *testing.T) {
	mem := &Memory{}
	a := NewAnnouncer(mem, time.Minute)
	clock, _ := testClock(time.Now())
	a.SetClock(clock)

	a.Announce("screen", "Options. 7 items.", true)
	a.Forget("screen")
	if !a.Announce("screen", "Options. 7 items.", true) {
		t.Fatalf("expected announcement after Forget to speak")
	}
}

func TestAnnounceCleansBeforeSpeaking(t *testing.T) {
	mem := &Memory{}
	a := NewAnnouncer(mem, time.Second)

	a.Announce("hover", "<b>Begin   Campaign</b>", false)
	if got := mem.Last(); got != "Begin Campaign" {
		t.Fatalf("expected cleaned text, got %q", got)
	}
	if a.Announce("hover", "", false) {
		t.Fatalf("expected empty text to be dropped")
	}
}
