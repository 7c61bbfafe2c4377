// Package host models the live game-side UI surface the review engine
// navigates: widgets with native activation entry points, panels with
// an active-in-hierarchy flag, and the hook bus that stands in for the
// runtime patch layer. The engine only discovers, reads and mutates
// widgets that already exist here; it never constructs them.
package host

import (
	"fmt"
	"strings"
)

// Widget is the minimal surface every host control exposes. Destroyed
// widgets stay addressable but report nothing and ignore mutation, the
// same way a dead engine object would.
type Widget interface {
	Name() string
	Destroyed() bool
	Interactable() bool
}

type base struct {
	name         string
	destroyed    bool
	interactable bool
}

func (b *base) Name() string       { return b.name }
func (b *base) Destroyed() bool    { return b.destroyed }
func (b *base) Interactable() bool { return !b.destroyed && b.interactable }

// Destroy marks the widget dead. Mirrors the host tearing down a
// dialog while a snapshot still points at its children.
func (b *base) Destroy() { b.destroyed = true }

func (b *base) SetInteractable(v bool) { b.interactable = v }

type Button struct {
	base
	Label   string
	onClick func()
}

func NewButton(name, label string, onClick func()) *Button {
	return &Button{base: base{name: name, interactable: true}, Label: label, onClick: onClick}
}

// Click invokes the native click action. No-op when destroyed or
// disabled.
func (b *Button) Click() {
	if !b.Interactable() || b.onClick == nil {
		return
	}
	b.onClick()
}

type Toggle struct {
	base
	Label     string
	value     bool
	onChanged func(bool)
}

func NewToggle(name, label string, value bool, onChanged func(bool)) *Toggle {
	return &Toggle{base: base{name: name, interactable: true}, Label: label, value: value, onChanged: onChanged}
}

func (t *Toggle) Value() bool { return t.value }

func (t *Toggle) SetValue(v bool) {
	if t.Destroyed() || t.value == v {
		return
	}
	t.value = v
	if t.onChanged != nil {
		t.onChanged(v)
	}
}

// Slider carries a raw value plus an optional display function, since
// hosts often label sliders with a mapping the raw value alone cannot
// reproduce (raw 3 shown as "75%").
type Slider struct {
	base
	Label     string
	value     float64
	min       float64
	max       float64
	step      float64
	display   func(float64) string
	onChanged func(float64)
}

func NewSlider(name, label string, value, min, max, step float64, onChanged func(float64)) *Slider {
	if step <= 0 {
		step = 1
	}
	return &Slider{
		base:      base{name: name, interactable: true},
		Label:     label,
		value:     clampFloat(value, min, max),
		min:       min,
		max:       max,
		step:      step,
		onChanged: onChanged,
	}
}

// SetDisplayFunc installs the label mapping shown next to the slider.
func (s *Slider) SetDisplayFunc(fn func(float64) string) { s.display = fn }

func (s *Slider) Value() float64          { return s.value }
func (s *Slider) Bounds() (lo, hi float64) { return s.min, s.max }
func (s *Slider) Step() float64           { return s.step }

// DisplayText is the text a sighted player sees next to the slider.
func (s *Slider) DisplayText() string {
	if s.display != nil {
		return s.display(s.value)
	}
	return trimFloat(s.value)
}

// SetValue clamps to bounds and fires the native value-changed
// notification so host-side labels update.
func (s *Slider) SetValue(v float64) {
	if s.Destroyed() {
		return
	}
	v = clampFloat(v, s.min, s.max)
	if v == s.value {
		return
	}
	s.value = v
	if s.onChanged != nil {
		s.onChanged(v)
	}
}

type Dropdown struct {
	base
	Label     string
	options   []string
	index     int
	onChanged func(int)
}

func NewDropdown(name, label string, options []string, index int, onChanged func(int)) *Dropdown {
	if index < 0 || index >= len(options) {
		index = 0
	}
	return &Dropdown{base: base{name: name, interactable: true}, Label: label, options: options, index: index, onChanged: onChanged}
}

func (d *Dropdown) Options() []string { return d.options }
func (d *Dropdown) Index() int        { return d.index }

func (d *Dropdown) Selected() string {
	if len(d.options) == 0 {
		return ""
	}
	return d.options[d.index]
}

func (d *Dropdown) SetIndex(i int) {
	if d.Destroyed() || len(d.options) == 0 {
		return
	}
	// Cycling wraps at both ends.
	i = ((i % len(d.options)) + len(d.options)) % len(d.options)
	if i == d.index {
		return
	}
	d.index = i
	if d.onChanged != nil {
		d.onChanged(i)
	}
}

type InputField struct {
	base
	Label       string
	Placeholder string
	text        string
	onChanged   func(string)
}

func NewInputField(name, label, text string, onChanged func(string)) *InputField {
	return &InputField{base: base{name: name, interactable: true}, Label: label, text: text, onChanged: onChanged}
}

func (f *InputField) Text() string { return f.text }

func (f *InputField) SetText(text string) {
	if f.Destroyed() || f.text == text {
		return
	}
	f.text = text
	if f.onChanged != nil {
		f.onChanged(text)
	}
}

// ListItem is one row of a scrollable list controller (save files,
// mods, alert queue entries).
type ListItem struct {
	base
	Label   string
	Detail  string
	onClick func()
}

func NewListItem(name, label, detail string, onClick func()) *ListItem {
	return &ListItem{base: base{name: name, interactable: true}, Label: label, Detail: detail, onClick: onClick}
}

func (li *ListItem) Click() {
	if !li.Interactable() || li.onClick == nil {
		return
	}
	li.onClick()
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
