// Package menu defines the engine-agnostic control and screen
// abstractions Review Mode navigates: a screen mirrors whatever the
// host currently displays as an ordered list of control snapshots, and
// translates keyboard intents back into widget mutations.
package menu

import (
	"fmt"

	"menuvox/internal/host"
)

type Type int

const (
	TypeButton Type = iota
	TypeToggle
	TypeSlider
	TypeDropdown
	TypeInputField
	TypeScrollListItem
	TypeDivider
)

func (t Type) String() string {
	switch t {
	case TypeButton:
		return "button"
	case TypeToggle:
		return "toggle"
	case TypeSlider:
		return "slider"
	case TypeDropdown:
		return "dropdown"
	case TypeInputField:
		return "input"
	case TypeScrollListItem:
		return "item"
	case TypeDivider:
		return "divider"
	default:
		return "unknown"
	}
}

// Control is a disposable snapshot of one interactive item. It is
// rebuilt on every screen refresh; the widget back-references are weak
// and must never be dereferenced after the next refresh.
type Control struct {
	Type         Type
	Label        string
	CurrentValue string
	DetailText   string
	// Action is an opaque, localization-independent identifier used
	// for control-specific branching (screen switches, save hooks).
	Action       string
	Interactable bool
	MinValue     float64
	MaxValue     float64

	btn  *host.Button
	tgl  *host.Toggle
	sld  *host.Slider
	dd   *host.Dropdown
	inp  *host.InputField
	item *host.ListItem
}

// FromButton snapshots a host button. Returns nil for destroyed or
// missing widgets; callers skip nils.
func FromButton(w *host.Button, action string) *Control {
	if w == nil || w.Destroyed() {
		return nil
	}
	return &Control{
		Type:         TypeButton,
		Label:        w.Label,
		Action:       action,
		Interactable: w.Interactable(),
		btn:          w,
	}
}

func FromToggle(w *host.Toggle, action string) *Control {
	if w == nil || w.Destroyed() {
		return nil
	}
	c := &Control{
		Type:         TypeToggle,
		Label:        w.Label,
		Action:       action,
		Interactable: w.Interactable(),
		tgl:          w,
	}
	c.RefreshValue()
	return c
}

func FromSlider(w *host.Slider, action string) *Control {
	if w == nil || w.Destroyed() {
		return nil
	}
	lo, hi := w.Bounds()
	c := &Control{
		Type:         TypeSlider,
		Label:        w.Label,
		Action:       action,
		Interactable: w.Interactable(),
		MinValue:     lo,
		MaxValue:     hi,
		sld:          w,
	}
	c.RefreshValue()
	return c
}

func FromDropdown(w *host.Dropdown, action string) *Control {
	if w == nil || w.Destroyed() {
		return nil
	}
	c := &Control{
		Type:         TypeDropdown,
		Label:        w.Label,
		Action:       action,
		Interactable: w.Interactable(),
		dd:           w,
	}
	c.RefreshValue()
	return c
}

func FromInput(w *host.InputField, action string) *Control {
	if w == nil || w.Destroyed() {
		return nil
	}
	c := &Control{
		Type:         TypeInputField,
		Label:        w.Label,
		Action:       action,
		Interactable: w.Interactable(),
		inp:          w,
	}
	c.RefreshValue()
	return c
}

func FromListItem(w *host.ListItem, action string) *Control {
	if w == nil || w.Destroyed() {
		return nil
	}
	return &Control{
		Type:         TypeScrollListItem,
		Label:        w.Label,
		DetailText:   w.Detail,
		Action:       action,
		Interactable: w.Interactable(),
		item:         w,
	}
}

// Divider is a non-interactable section heading. Pure dividers with an
// empty label announce nothing when activated.
func Divider(label string) *Control {
	return &Control{Type: TypeDivider, Label: label}
}

// RefreshValue re-reads the authoritative displayed value from the
// widget. Slider and dropdown values can change from outside input
// between snapshot and announcement, so stateful controls re-read
// before every announcement. For sliders this reads the displayed
// label text, not a recomputation from the raw value, so what is
// spoken matches what a sighted player sees.
func (c *Control) RefreshValue() string {
	switch {
	case c.tgl != nil && !c.tgl.Destroyed():
		if c.tgl.Value() {
			c.CurrentValue = "on"
		} else {
			c.CurrentValue = "off"
		}
	case c.sld != nil && !c.sld.Destroyed():
		c.CurrentValue = c.sld.DisplayText()
	case c.dd != nil && !c.dd.Destroyed():
		c.CurrentValue = c.dd.Selected()
	case c.inp != nil && !c.inp.Destroyed():
		c.CurrentValue = c.inp.Text()
	}
	return c.CurrentValue
}

// Activate performs the control-specific action and returns the
// resulting announcement. changed reports whether host state moved.
func (c *Control) Activate() (announcement string, changed bool) {
	if !c.Interactable {
		if c.Type == TypeDivider && c.Label == "" {
			return "", false
		}
		if c.Type == TypeDivider {
			return c.Label, false
		}
		return c.Label + " unavailable", false
	}
	switch c.Type {
	case TypeButton:
		if c.btn == nil || c.btn.Destroyed() {
			return "", false
		}
		c.btn.Click()
		return c.Label, true
	case TypeToggle:
		if c.tgl == nil || c.tgl.Destroyed() {
			return "", false
		}
		c.tgl.SetValue(!c.tgl.Value())
		return fmt.Sprintf("%s %s", c.Label, c.RefreshValue()), true
	case TypeDropdown:
		// Activation cycles forward, same as adjust-up.
		return c.Adjust(true)
	case TypeScrollListItem:
		if c.item == nil || c.item.Destroyed() {
			return "", false
		}
		c.item.Click()
		return c.Label, true
	case TypeSlider, TypeInputField:
		return fmt.Sprintf("%s %s", c.Label, c.RefreshValue()), false
	}
	return "", false
}

// Adjust moves a stateful control one step and returns the
// announcement built from the re-read displayed value. Buttons and
// list items are not adjustable.
func (c *Control) Adjust(increment bool) (announcement string, changed bool) {
	if !c.Interactable {
		return "", false
	}
	switch c.Type {
	case TypeSlider:
		if c.sld == nil || c.sld.Destroyed() {
			return "", false
		}
		before := c.sld.Value()
		step := c.sld.Step()
		if !increment {
			step = -step
		}
		c.sld.SetValue(before + step)
		return fmt.Sprintf("%s %s", c.Label, c.RefreshValue()), c.sld.Value() != before
	case TypeDropdown:
		if c.dd == nil || c.dd.Destroyed() {
			return "", false
		}
		delta := 1
		if !increment {
			delta = -1
		}
		c.dd.SetIndex(c.dd.Index() + delta)
		return fmt.Sprintf("%s %s", c.Label, c.RefreshValue()), true
	case TypeToggle:
		if c.tgl == nil || c.tgl.Destroyed() {
			return "", false
		}
		c.tgl.SetValue(!c.tgl.Value())
		return fmt.Sprintf("%s %s", c.Label, c.RefreshValue()), true
	}
	return "", false
}

// Fraction reports the slider position within its bounds, used for the
// visual bar. ok is false for non-sliders and degenerate ranges.
func (c *Control) Fraction() (float64, bool) {
	if c.Type != TypeSlider || c.sld == nil || c.sld.Destroyed() || c.MaxValue <= c.MinValue {
		return 0, false
	}
	return (c.sld.Value() - c.MinValue) / (c.MaxValue - c.MinValue), true
}

// Detail returns the long description for the read-detail command.
// Never mutates widget state.
func (c *Control) Detail() string {
	if c.DetailText != "" {
		return c.DetailText
	}
	value := c.RefreshValue()
	if value != "" {
		return fmt.Sprintf("%s, %s, %s", c.Label, c.Type, value)
	}
	return fmt.Sprintf("%s, %s", c.Label, c.Type)
}

// Summary is the short spoken form used while cursoring through a
// screen.
func (c *Control) Summary() string {
	value := c.RefreshValue()
	switch c.Type {
	case TypeDivider:
		return c.Label
	case TypeButton, TypeScrollListItem:
		if !c.Interactable {
			return c.Label + ", unavailable"
		}
		return fmt.Sprintf("%s, %s", c.Label, c.Type)
	default:
		if value == "" {
			return fmt.Sprintf("%s, %s", c.Label, c.Type)
		}
		return fmt.Sprintf("%s, %s, %s", c.Label, c.Type, value)
	}
}
