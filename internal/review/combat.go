package review

import (
	"menuvox/internal/host"
	"menuvox/internal/menu"
)

// Combat mirrors the combat dialog while the combat sub-mode is
// active. The dialog rebuilds its widgets on every open, so Refresh
// rescrapes rather than caching anything.
type Combat struct {
	menu.Base
	sim *host.Sim
}

func NewCombat(sim *host.Sim) *Combat {
	return &Combat{sim: sim}
}

func (s *Combat) Name() string { return "Combat" }

func (s *Combat) IsVisible() bool { return s.sim.CombatDialog.ActiveInHierarchy() }

func (s *Combat) Refresh() {
	s.Reset()
	for _, w := range s.sim.CombatDialog.Widgets() {
		switch t := w.(type) {
		case *host.ListItem:
			s.Add(menu.FromListItem(t, "combat_item"))
		case *host.Button:
			s.Add(menu.FromButton(t, "combat_action"))
		}
	}
}

// ActivationAnnouncement leads with the combat summary so the player
// hears the situation before cursoring into units.
func (s *Combat) ActivationAnnouncement() string {
	if c := s.ControlAt(0); c != nil && c.DetailText != "" {
		return "Combat. " + c.DetailText
	}
	return "Combat."
}

func (s *Combat) OnDeactivate() {}
