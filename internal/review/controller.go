// Package review implements the keyboard review layer: a cursor over
// the controls of whichever screen or dialog the host currently shows,
// driven entirely through spoken announcements.
package review

import (
	"fmt"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"menuvox/internal/menu"
	"menuvox/internal/speech"
	"menuvox/internal/telemetry"
)

// Mode is the exclusive sub-mode the controller is in while a host
// dialog owns the cursor. ModeNone means ordinary menu review.
type Mode int

const (
	ModeNone Mode = iota
	ModeCombat
	ModeNotification
	ModePolicy
)

func (m Mode) String() string {
	switch m {
	case ModeCombat:
		return "combat"
	case ModeNotification:
		return "notification"
	case ModePolicy:
		return "policy"
	default:
		return "none"
	}
}

// SessionStore persists review session lifecycles. Failures are logged
// and never surface to the player.
type SessionStore interface {
	BeginReviewSession(id string, at time.Time) error
	EndReviewSession(id string, at time.Time) error
}

// Controller owns the screen registry, the active/dormant state, the
// cursor, and the sub-mode lifecycle. Every public entry point runs
// inside a recovery guard: a panicking screen must never take the host
// frame down with it.
//
// The controller is single-goroutine by design: hooks fire
// synchronously on the host frame and key handling runs on the same
// loop, matching how the host schedules its UI.
type Controller struct {
	log      *telemetry.JSONLogger
	announce *speech.Announcer
	deferred *speech.Deferred
	store    SessionStore

	registry map[string]menu.Screen
	order    []string

	combat       menu.Screen
	notification menu.Screen
	policy       menu.Screen

	active  bool
	mode    Mode
	current menu.Screen
	cursor  int

	session string
	now     func() time.Time

	// prevScreen is the menu screen to restore when the sub-mode exits;
	// empty means the controller was dormant at entry.
	prevScreen string
	// autoActivated marks that sub-mode entry activated review mode
	// itself, so sub-mode exit deactivates again.
	autoActivated bool

	// combatPending latches until observed once.
	combatPending bool
}

func NewController(log *telemetry.JSONLogger, ann *speech.Announcer, def *speech.Deferred, store SessionStore) *Controller {
	if ann == nil {
		ann = speech.NewAnnouncer(speech.Discard{}, 0)
	}
	if def == nil {
		def = speech.NewDeferred(ann, 0)
	}
	return &Controller{
		log:      log,
		announce: ann,
		deferred: def,
		store:    store,
		registry: map[string]menu.Screen{},
		now:      time.Now,
	}
}

// SetClock overrides the time source for tests.
func (c *Controller) SetClock(now func() time.Time) { c.now = now }

// RegisterScreen adds a menu screen to the registry. Registration
// order is the fallback order for visibility drift resolution.
func (c *Controller) RegisterScreen(s menu.Screen) {
	if s == nil {
		return
	}
	name := s.Name()
	if _, dup := c.registry[name]; !dup {
		c.order = append(c.order, name)
	}
	c.registry[name] = s
}

// SetSubModeScreens wires the three dialog mirrors. They live outside
// the registry: sub-modes are entered through hooks, never by name.
func (c *Controller) SetSubModeScreens(combat, notification, policy menu.Screen) {
	c.combat = combat
	c.notification = notification
	c.policy = policy
}

func (c *Controller) Active() bool        { return c.active }
func (c *Controller) CurrentMode() Mode   { return c.mode }
func (c *Controller) CursorIndex() int    { return c.cursor }
func (c *Controller) SessionID() string   { return c.session }
func (c *Controller) Current() menu.Screen { return c.current }

// CurrentScreenName reports the active screen, or "" when dormant.
func (c *Controller) CurrentScreenName() string {
	if c.current == nil {
		return ""
	}
	return c.current.Name()
}

// guard wraps every dispatch so a panicking screen or widget callback
// is contained and logged instead of unwinding into the host frame.
func (c *Controller) guard(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("review op panicked", map[string]any{
				"op":    op,
				"panic": fmt.Sprint(r),
			})
		}
	}()
	fn()
}

// Toggle flips between dormant and active.
func (c *Controller) Toggle() {
	if c.active {
		c.Deactivate()
	} else {
		c.Activate()
	}
}

// Activate enters review mode on the first registered screen that is
// currently visible. With nothing visible it activates cursor-less and
// waits for Update to find a screen.
func (c *Controller) Activate() {
	c.guard("activate", func() {
		if c.active {
			return
		}
		c.active = true
		c.session = uuid.NewString()
		if c.store != nil {
			if err := c.store.BeginReviewSession(c.session, c.now()); err != nil {
				c.log.Warn("session begin not recorded", map[string]any{"error": err.Error()})
			}
		}
		c.log.Info("review activated", map[string]any{"session": c.session})
		if name := c.firstVisible(); name != "" {
			c.switchTo(name)
		} else {
			c.say("review", "Review mode on.", true)
		}
	})
}

// Deactivate returns to dormant, releasing the cursor and flushing the
// current screen's deactivation hook.
func (c *Controller) Deactivate() {
	c.guard("deactivate", func() {
		if !c.active {
			return
		}
		if c.current != nil {
			c.current.OnDeactivate()
		}
		c.current = nil
		c.cursor = 0
		c.mode = ModeNone
		c.active = false
		c.autoActivated = false
		c.prevScreen = ""
		c.deferred.CancelAll()
		if c.store != nil {
			if err := c.store.EndReviewSession(c.session, c.now()); err != nil {
				c.log.Warn("session end not recorded", map[string]any{"error": err.Error()})
			}
		}
		c.log.Info("review deactivated", map[string]any{"session": c.session})
		c.say("review", "Review mode off.", true)
	})
}

// SwitchToMenuScreen moves the cursor to a registered screen by name.
// An unknown name is a logged no-op with a nearest-name suggestion;
// the player is never interrupted for an internal wiring mistake.
func (c *Controller) SwitchToMenuScreen(name string) {
	c.guard("switch", func() {
		if !c.active || c.mode != ModeNone {
			return
		}
		if _, ok := c.registry[name]; !ok {
			fields := map[string]any{"screen": name}
			if near := c.nearestName(name); near != "" {
				fields["did_you_mean"] = near
			}
			c.log.Warn("unknown screen requested", fields)
			return
		}
		c.switchTo(name)
	})
}

// RequestScreen lets screens ask for a switch after a navigation
// control fires. Satisfies menu.Navigator.
func (c *Controller) RequestScreen(name string) { c.SwitchToMenuScreen(name) }

func (c *Controller) switchTo(name string) {
	next := c.registry[name]
	if c.current != nil && c.current != next {
		c.current.OnDeactivate()
	}
	c.current = next
	c.current.Refresh()
	c.cursor = 0
	c.announce.Forget(name)
	c.say(name, c.current.ActivationAnnouncement(), true)
	c.log.Info("screen switched", map[string]any{"screen": name, "controls": len(c.current.Controls())})
}

// nearestName returns the closest registered screen name within an
// edit distance worth suggesting.
func (c *Controller) nearestName(name string) string {
	best, bestDist := "", 0
	for _, candidate := range c.order {
		d := levenshtein.ComputeDistance(name, candidate)
		if best == "" || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if best == "" || bestDist > len(best)/2+1 {
		return ""
	}
	return best
}

// NextControl moves the cursor forward, wrapping past the end. Empty
// screens are a silent no-op.
func (c *Controller) NextControl() { c.moveCursor(1) }

// PrevControl moves the cursor backward, wrapping past the start.
func (c *Controller) PrevControl() { c.moveCursor(-1) }

func (c *Controller) moveCursor(delta int) {
	c.guard("move", func() {
		s := c.screen()
		if s == nil {
			return
		}
		n := len(s.Controls())
		if n == 0 {
			return
		}
		c.cursor = wrapIndex(c.cursor+delta, n)
		if ctrl := s.Controls()[c.cursor]; ctrl != nil {
			// Explicit movement always speaks, even when a wrap lands
			// on the same control again.
			c.sayAlways(s.Name()+"/cursor", ctrl.Summary(), true)
		}
	})
}

// ActivateCursor activates the control under the cursor.
func (c *Controller) ActivateCursor() {
	c.guard("activate_control", func() {
		s := c.screen()
		if s == nil {
			return
		}
		if line := c.activate(s, c.cursor); line != "" {
			c.say(s.Name()+"/activate", line, true)
		}
	})
}

// AdjustCursor nudges a stateful control up or down.
func (c *Controller) AdjustCursor(increment bool) {
	c.guard("adjust", func() {
		s := c.screen()
		if s == nil {
			return
		}
		if line := c.adjust(s, c.cursor, increment); line != "" {
			c.sayAlways(s.Name()+"/adjust", line, true)
		}
	})
}

// ReadDetail speaks the long description of the control under the
// cursor, bypassing the debounce cache: an explicit request always
// speaks.
func (c *Controller) ReadDetail() {
	c.guard("detail", func() {
		s := c.screen()
		if s == nil {
			return
		}
		ctrl := c.controlAt(s, c.cursor)
		if ctrl == nil {
			return
		}
		c.sayAlways(s.Name()+"/detail", ctrl.Detail(), true)
	})
}

// CursorDetail returns the long description under the cursor without
// speaking or mutating anything. Used by the detail overlay.
func (c *Controller) CursorDetail() string {
	s := c.screen()
	if s == nil {
		return ""
	}
	ctrl := c.controlAt(s, c.cursor)
	if ctrl == nil {
		return ""
	}
	return ctrl.Detail()
}

// EnterCombatMode switches the cursor to the combat dialog mirror.
// Re-entry while already in combat refreshes in place rather than
// stacking.
func (c *Controller) EnterCombatMode() { c.enterSubMode(ModeCombat, c.combat) }

// EnterNotificationMode switches to the alert queue mirror.
func (c *Controller) EnterNotificationMode() { c.enterSubMode(ModeNotification, c.notification) }

// EnterPolicySelectionMode switches to the policy picker mirror.
func (c *Controller) EnterPolicySelectionMode() { c.enterSubMode(ModePolicy, c.policy) }

func (c *Controller) enterSubMode(mode Mode, s menu.Screen) {
	c.guard("enter_"+mode.String(), func() {
		if s == nil {
			return
		}
		if c.mode == mode {
			s.Refresh()
			c.cursor = clampCursor(c.cursor, len(s.Controls()))
			return
		}
		if c.mode != ModeNone {
			// Exclusive: a new dialog displaces the old sub-mode
			// without restoring in between.
			c.deferred.Cancel(c.current.Name())
		} else if c.active && c.current != nil {
			c.prevScreen = c.current.Name()
			c.current.OnDeactivate()
		}
		if !c.active {
			c.active = true
			c.autoActivated = true
			c.session = uuid.NewString()
			if c.store != nil {
				if err := c.store.BeginReviewSession(c.session, c.now()); err != nil {
					c.log.Warn("session begin not recorded", map[string]any{"error": err.Error()})
				}
			}
		}
		c.mode = mode
		c.current = s
		s.Refresh()
		c.cursor = 0
		c.log.Info("sub-mode entered", map[string]any{"mode": mode.String(), "session": c.session})
		// One-frame deferral: the dialog may still be activating its
		// children; speak on the next pump, and only if it survived.
		c.deferred.Schedule(s.Name(), s.ActivationAnnouncement(), true, s.IsVisible)
	})
}

// ExitCombatMode leaves combat and restores the prior context.
func (c *Controller) ExitCombatMode() { c.exitSubMode(ModeCombat) }

// ExitNotificationMode leaves the alert queue.
func (c *Controller) ExitNotificationMode() { c.exitSubMode(ModeNotification) }

// ExitPolicySelectionMode leaves the policy picker.
func (c *Controller) ExitPolicySelectionMode() { c.exitSubMode(ModePolicy) }

func (c *Controller) exitSubMode(mode Mode) {
	c.guard("exit_"+mode.String(), func() {
		if c.mode != mode {
			return
		}
		c.deferred.Cancel(c.current.Name())
		c.mode = ModeNone
		c.current = nil
		c.cursor = 0
		c.log.Info("sub-mode exited", map[string]any{"mode": mode.String(), "session": c.session})
		if c.autoActivated {
			// Review mode only existed for this dialog; drop back to
			// dormant instead of landing the player somewhere new.
			c.active = false
			c.autoActivated = false
			if c.store != nil {
				if err := c.store.EndReviewSession(c.session, c.now()); err != nil {
					c.log.Warn("session end not recorded", map[string]any{"error": err.Error()})
				}
			}
			return
		}
		if c.prevScreen != "" {
			name := c.prevScreen
			c.prevScreen = ""
			if s, ok := c.registry[name]; ok && s.IsVisible() {
				c.switchTo(name)
				return
			}
		}
		if name := c.firstVisible(); name != "" {
			c.switchTo(name)
		}
	})
}

// SetCombatPending latches the combat-pending flag. It stays set until
// someone checks it, however many frames later that is.
func (c *Controller) SetCombatPending() { c.combatPending = true }

// CheckAndClearCombatPendingFlag reports and clears the latch in one
// observation: a second check sees false until the next set.
func (c *Controller) CheckAndClearCombatPendingFlag() bool {
	was := c.combatPending
	c.combatPending = false
	return was
}

// Update runs once per host frame: it resolves visibility drift (the
// host changed screens underneath the cursor), keeps sub-mode mirrors
// in step with dialog rebuilds, and pumps deferred announcements.
func (c *Controller) Update() {
	c.guard("update", func() {
		if c.active && c.mode != ModeNone && c.current != nil {
			if !c.current.IsVisible() {
				// The dialog closed without the hook firing (host-side
				// dismissal); treat it as a normal exit.
				c.exitCurrentSubMode()
			} else {
				// Dialogs rebuild their widgets in place while shown
				// (alert queue growth, combat rounds) without raising
				// another shown hook; rescrape every frame so the
				// cursor never walks orphaned snapshots.
				c.current.Refresh()
				c.cursor = clampCursor(c.cursor, len(c.current.Controls()))
			}
		}
		if c.active && c.mode == ModeNone {
			if c.current == nil || !c.current.IsVisible() {
				if name := c.firstVisible(); name != "" && name != c.CurrentScreenName() {
					c.log.Info("visibility drift", map[string]any{
						"from": c.CurrentScreenName(),
						"to":   name,
					})
					c.switchTo(name)
				}
			}
		}
		c.deferred.Pump()
	})
}

func (c *Controller) exitCurrentSubMode() {
	switch c.mode {
	case ModeCombat:
		c.ExitCombatMode()
	case ModeNotification:
		c.ExitNotificationMode()
	case ModePolicy:
		c.ExitPolicySelectionMode()
	}
}

// screen returns the screen owning the cursor, nil while dormant.
func (c *Controller) screen() menu.Screen {
	if !c.active {
		return nil
	}
	return c.current
}

func (c *Controller) firstVisible() string {
	for _, name := range c.order {
		if c.registry[name].IsVisible() {
			return name
		}
	}
	return ""
}

func (c *Controller) say(key, text string, interrupt bool) {
	c.announce.Announce(key, text, interrupt)
}

func (c *Controller) sayAlways(key, text string, interrupt bool) {
	c.announce.Say(key, text, interrupt)
}

// controlAt goes through the screen's bounds-checked accessor when the
// screen exposes one, falling back to the slice.
func (c *Controller) controlAt(s menu.Screen, i int) *menu.Control {
	controls := s.Controls()
	if i < 0 || i >= len(controls) {
		return nil
	}
	return controls[i]
}

type activator interface{ ActivateControl(int) string }
type adjuster interface{ AdjustControl(int, bool) string }

func (c *Controller) activate(s menu.Screen, i int) string {
	if a, ok := s.(activator); ok {
		return a.ActivateControl(i)
	}
	ctrl := c.controlAt(s, i)
	if ctrl == nil {
		return ""
	}
	line, _ := ctrl.Activate()
	return line
}

func (c *Controller) adjust(s menu.Screen, i int, increment bool) string {
	if a, ok := s.(adjuster); ok {
		return a.AdjustControl(i, increment)
	}
	ctrl := c.controlAt(s, i)
	if ctrl == nil {
		return ""
	}
	line, _ := ctrl.Adjust(increment)
	return line
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func clampCursor(i, n int) int {
	if n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
