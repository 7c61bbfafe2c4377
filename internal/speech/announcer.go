package speech

import (
	"sync"
	"time"
)

// JournalSink receives a copy of every utterance that actually reached
// the synthesizer. Implemented by the state store.
type JournalSink interface {
	RecordAnnouncement(ts time.Time, source, text string)
}

type lastSeen struct {
	text string
	at   time.Time
}

// Announcer fronts a Synthesizer with a keyed debounce cache: the same
// text for the same key within the TTL is dropped. Keys are the
// announcement source (screen name, hook name), so distinct screens
// never suppress each other.
type Announcer struct {
	mu    sync.Mutex
	synth Synthesizer
	ttl   time.Duration
	seen  map[string]lastSeen
	sink  JournalSink
	now   func() time.Time

	speaking func(bool)
}

const DefaultDebounce = 1500 * time.Millisecond

func NewAnnouncer(synth Synthesizer, ttl time.Duration) *Announcer {
	if synth == nil {
		synth = Discard{}
	}
	if ttl <= 0 {
		ttl = DefaultDebounce
	}
	return &Announcer{
		synth: synth,
		ttl:   ttl,
		seen:  map[string]lastSeen{},
		now:   time.Now,
	}
}

// SetJournal attaches a journal sink. Nil detaches.
func (a *Announcer) SetJournal(sink JournalSink) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sink = sink
}

// SetSpeakingFunc attaches a callback toggled around each utterance,
// used by the UI speaking indicator.
func (a *Announcer) SetSpeakingFunc(fn func(bool)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.speaking = fn
}

// SetClock overrides the time source for tests.
func (a *Announcer) SetClock(now func() time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.now = now
}

// Announce speaks cleaned text unless the identical text was spoken for
// the same key within the TTL. Reports whether anything was spoken.
func (a *Announcer) Announce(key, raw string, interrupt bool) bool {
	text := CleanText(raw)
	if text == "" {
		return false
	}
	a.mu.Lock()
	now := a.now()
	if prev, ok := a.seen[key]; ok && prev.text == text && now.Sub(prev.at) < a.ttl {
		a.mu.Unlock()
		return false
	}
	a.seen[key] = lastSeen{text: text, at: now}
	synth, sink, speaking := a.synth, a.sink, a.speaking
	a.mu.Unlock()

	if speaking != nil {
		speaking(true)
	}
	synth.Speak(text, interrupt)
	if sink != nil {
		sink.RecordAnnouncement(now, key, text)
	}
	return true
}

// Say bypasses the debounce cache. Used for explicit read-detail
// commands, which must always speak even if a hover announcement just
// said the same thing.
func (a *Announcer) Say(key, raw string, interrupt bool) bool {
	text := CleanText(raw)
	if text == "" {
		return false
	}
	a.mu.Lock()
	now := a.now()
	a.seen[key] = lastSeen{text: text, at: now}
	synth, sink, speaking := a.synth, a.sink, a.speaking
	a.mu.Unlock()

	if speaking != nil {
		speaking(true)
	}
	synth.Speak(text, interrupt)
	if sink != nil {
		sink.RecordAnnouncement(now, key, text)
	}
	return true
}

// Forget drops the debounce entry for a key so the next announcement
// always goes through. Called on context switches.
func (a *Announcer) Forget(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.seen, key)
}
