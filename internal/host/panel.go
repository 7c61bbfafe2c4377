package host

// Panel groups widgets under one named surface (a menu or dialog).
// Visibility is hierarchical: a panel is only shown when it and every
// ancestor is enabled.
type Panel struct {
	name    string
	enabled bool
	parent  *Panel
	widgets []Widget
}

func NewPanel(name string) *Panel {
	return &Panel{name: name}
}

func (p *Panel) Name() string { return p.name }

func (p *Panel) AddChildPanel(name string) *Panel {
	child := &Panel{name: name, parent: p}
	return child
}

func (p *Panel) Add(ws ...Widget) {
	p.widgets = append(p.widgets, ws...)
}

func (p *Panel) Widgets() []Widget { return p.widgets }

func (p *Panel) SetEnabled(v bool) { p.enabled = v }

// ActiveInHierarchy reports whether the panel is actually on screen.
// Cheap: walks the parent chain, no allocation.
func (p *Panel) ActiveInHierarchy() bool {
	for n := p; n != nil; n = n.parent {
		if !n.enabled {
			return false
		}
	}
	return true
}

// Find returns the named widget or nil. Nil results are normal: dialog
// layouts vary by context and absent widgets mean nothing to report.
func (p *Panel) Find(name string) Widget {
	for _, w := range p.widgets {
		if w.Name() == name {
			return w
		}
	}
	return nil
}
