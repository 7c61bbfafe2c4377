package review

import (
	"menuvox/internal/host"
	"menuvox/internal/menu"
)

// Policy mirrors the policy picker dialog: a title row, one row per
// option, and a cancel button.
type Policy struct {
	menu.Base
	sim *host.Sim
}

func NewPolicy(sim *host.Sim) *Policy {
	return &Policy{sim: sim}
}

func (s *Policy) Name() string { return "Policy Selection" }

func (s *Policy) IsVisible() bool { return s.sim.PolicyDialog.ActiveInHierarchy() }

func (s *Policy) Refresh() {
	s.Reset()
	for _, w := range s.sim.PolicyDialog.Widgets() {
		switch t := w.(type) {
		case *host.ListItem:
			s.Add(menu.FromListItem(t, "policy"))
		case *host.Button:
			s.Add(menu.FromButton(t, "cancel"))
		}
	}
}

func (s *Policy) ActivationAnnouncement() string {
	options := s.ControlCount() - 2 // minus title and cancel
	if options < 0 {
		options = 0
	}
	title := "Policy Selection"
	if c := s.ControlAt(0); c != nil && c.Label != "" {
		title = c.Label
	}
	return menu.CountAnnouncement(title, options, "options")
}

func (s *Policy) OnDeactivate() {}
