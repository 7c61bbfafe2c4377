package screens

import (
	"menuvox/internal/host"
	"menuvox/internal/menu"
)

type Mods struct {
	menu.Base
	sim *host.Sim
}

func NewMods(sim *host.Sim, nav menu.Navigator) *Mods {
	s := &Mods{sim: sim}
	s.SetNavigator(nav)
	s.RouteAction("back", "Main Menu")
	return s
}

func (s *Mods) Name() string { return "Mods" }

func (s *Mods) IsVisible() bool { return s.sim.Mods.ActiveInHierarchy() }

func (s *Mods) Refresh() {
	s.Reset()
	for _, w := range s.sim.Mods.Widgets() {
		switch t := w.(type) {
		case *host.Toggle:
			s.Add(menu.FromToggle(t, "mod_enabled"))
		case *host.Button:
			s.Add(menu.FromButton(t, "back"))
		}
	}
}

func (s *Mods) ActivationAnnouncement() string {
	mods := 0
	for _, c := range s.Controls() {
		if c.Type == menu.TypeToggle {
			mods++
		}
	}
	return menu.CountAnnouncement("Mods", mods, "mods")
}

func (s *Mods) OnDeactivate() {}
