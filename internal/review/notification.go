package review

import (
	"menuvox/internal/host"
	"menuvox/internal/menu"
)

// Notification mirrors the alert queue dialog. The queue can grow or
// shrink between refreshes; every entry is rescraped each time.
type Notification struct {
	menu.Base
	sim *host.Sim
}

func NewNotification(sim *host.Sim) *Notification {
	return &Notification{sim: sim}
}

func (s *Notification) Name() string { return "Notifications" }

func (s *Notification) IsVisible() bool { return s.sim.AlertDialog.ActiveInHierarchy() }

func (s *Notification) Refresh() {
	s.Reset()
	for _, w := range s.sim.AlertDialog.Widgets() {
		switch t := w.(type) {
		case *host.ListItem:
			s.Add(menu.FromListItem(t, "alert"))
		case *host.Button:
			s.Add(menu.FromButton(t, "dismiss"))
		}
	}
}

func (s *Notification) ActivationAnnouncement() string {
	alerts := 0
	for _, c := range s.Controls() {
		if c.Type == menu.TypeScrollListItem {
			alerts++
		}
	}
	out := menu.CountAnnouncement("Notifications", alerts, "alerts")
	if c := s.ControlAt(0); c != nil && c.DetailText != "" {
		out += " " + c.DetailText
	}
	return out
}

func (s *Notification) OnDeactivate() {}
