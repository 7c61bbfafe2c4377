package menu

import "fmt"

// Navigator is how a screen requests a screen switch. Screens never
// switch screens themselves by reference; the controller owns the
// registry and the cursor.
type Navigator interface {
	RequestScreen(name string)
}

// Screen is one navigable surface. Controls are rebuilt on every
// Refresh in navigation order; stale snapshots from before the last
// refresh must not be used.
type Screen interface {
	Name() string
	// IsVisible is polled every frame and must stay cheap.
	IsVisible() bool
	Refresh()
	Controls() []*Control
	ActivationAnnouncement() string
	// OnDeactivate runs best-effort when the controller moves away
	// from the screen (persisting settings, releasing caches).
	OnDeactivate()
}

// Base carries the shared control-list behavior of every screen.
// Concrete screens embed it and populate the list in Refresh via
// Reset/Add.
type Base struct {
	controls []*Control
	nav      Navigator
	// navTargets maps a control Action to the screen name to request
	// after that control activates.
	navTargets map[string]string
}

func (b *Base) SetNavigator(nav Navigator) { b.nav = nav }

// RouteAction registers a screen switch to request after the control
// with the given action activates.
func (b *Base) RouteAction(action, screenName string) {
	if b.navTargets == nil {
		b.navTargets = map[string]string{}
	}
	b.navTargets[action] = screenName
}

// Reset clears the control list and every cached back-reference.
// Called at the top of each Refresh.
func (b *Base) Reset() { b.controls = nil }

// Add appends controls in navigation order, skipping nils from
// factories that saw destroyed widgets.
func (b *Base) Add(cs ...*Control) {
	for _, c := range cs {
		if c != nil {
			b.controls = append(b.controls, c)
		}
	}
}

func (b *Base) Controls() []*Control { return b.controls }

func (b *Base) ControlCount() int { return len(b.controls) }

// ControlAt is bounds-checked; out of range returns nil.
func (b *Base) ControlAt(index int) *Control {
	if index < 0 || index >= len(b.controls) {
		return nil
	}
	return b.controls[index]
}

// ActivateControl activates by index. Out of range is a silent no-op.
// Returns the announcement to speak; empty means say nothing.
func (b *Base) ActivateControl(index int) string {
	c := b.ControlAt(index)
	if c == nil {
		return ""
	}
	announcement, changed := c.Activate()
	if changed && b.nav != nil {
		if target, ok := b.navTargets[c.Action]; ok {
			b.nav.RequestScreen(target)
		}
	}
	return announcement
}

// AdjustControl nudges a stateful control. Buttons and out-of-range
// indexes are silent no-ops.
func (b *Base) AdjustControl(index int, increment bool) string {
	c := b.ControlAt(index)
	if c == nil {
		return ""
	}
	announcement, _ := c.Adjust(increment)
	return announcement
}

// ControlDetail returns the long description without mutating
// anything.
func (b *Base) ControlDetail(index int) string {
	c := b.ControlAt(index)
	if c == nil {
		return ""
	}
	return c.Detail()
}

// CountAnnouncement builds the standard "Name. N items." activation
// line.
func CountAnnouncement(name string, count int, noun string) string {
	if noun == "" {
		noun = "items"
	}
	return fmt.Sprintf("%s. %d %s.", name, count, noun)
}
