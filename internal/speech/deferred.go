package speech

import (
	"sync"
	"time"
)

type deferredItem struct {
	key       string
	text      string
	interrupt bool
	alive     func() bool
	earliest  time.Time
}

// Deferred holds announcements that must wait one frame before
// speaking, so a freshly enabled dialog can finish activating its
// children first. A per-key cooldown prevents the same dialog from
// queueing twice inside the window; a liveness check on resume drops
// announcements whose dialog was closed in the meantime.
type Deferred struct {
	mu       sync.Mutex
	out      *Announcer
	items    []deferredItem
	lastKeys map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

func NewDeferred(out *Announcer, cooldown time.Duration) *Deferred {
	if cooldown <= 0 {
		cooldown = 250 * time.Millisecond
	}
	return &Deferred{
		out:      out,
		lastKeys: map[string]time.Time{},
		cooldown: cooldown,
		now:      time.Now,
	}
}

func (d *Deferred) SetClock(now func() time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.now = now
}

// Schedule queues text to be spoken on the next Pump. alive is checked
// at speak time; nil means always alive. A second schedule for the same
// key inside the cooldown window is dropped.
func (d *Deferred) Schedule(key, text string, interrupt bool, alive func() bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if last, ok := d.lastKeys[key]; ok && now.Sub(last) < d.cooldown {
		return false
	}
	d.lastKeys[key] = now
	d.items = append(d.items, deferredItem{
		key:       key,
		text:      text,
		interrupt: interrupt,
		alive:     alive,
		earliest:  now,
	})
	return true
}

// Cancel discards pending announcements for one key.
func (d *Deferred) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.items[:0]
	for _, it := range d.items {
		if it.key != key {
			kept = append(kept, it)
		}
	}
	d.items = kept
}

// CancelAll discards everything in flight. Called when switching
// screens or exiting a sub-mode.
func (d *Deferred) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = nil
}

// Pump speaks every queued item whose frame has elapsed and whose
// dialog is still alive. Called once per host frame.
func (d *Deferred) Pump() int {
	d.mu.Lock()
	now := d.now()
	var ready, rest []deferredItem
	for _, it := range d.items {
		if now.After(it.earliest) {
			ready = append(ready, it)
		} else {
			rest = append(rest, it)
		}
	}
	d.items = rest
	out := d.out
	d.mu.Unlock()

	spoken := 0
	for _, it := range ready {
		if it.alive != nil && !it.alive() {
			continue
		}
		if out != nil && out.Say(it.key, it.text, it.interrupt) {
			spoken++
		}
	}
	return spoken
}

// Pending reports how many announcements are queued.
func (d *Deferred) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}
