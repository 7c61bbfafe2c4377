package screens

import (
	"menuvox/internal/host"
	"menuvox/internal/menu"
)

type Skirmish struct {
	menu.Base
	sim *host.Sim
}

func NewSkirmish(sim *host.Sim, nav menu.Navigator) *Skirmish {
	s := &Skirmish{sim: sim}
	s.SetNavigator(nav)
	s.RouteAction("back", "Main Menu")
	return s
}

func (s *Skirmish) Name() string { return "Skirmish" }

func (s *Skirmish) IsVisible() bool { return s.sim.Skirmish.ActiveInHierarchy() }

func (s *Skirmish) Refresh() {
	s.Reset()
	p := s.sim.Skirmish
	s.Add(
		menu.FromDropdown(asDropdown(p.Find("ddMap")), "map"),
		menu.FromSlider(asSlider(p.Find("sldOpponents")), "opponents"),
		menu.FromButton(asButton(p.Find("btnLaunch")), "launch"),
		menu.FromButton(asButton(p.Find("btnBack")), "back"),
	)
}

func (s *Skirmish) ActivationAnnouncement() string {
	return menu.CountAnnouncement("Skirmish", s.ControlCount(), "settings")
}

func (s *Skirmish) OnDeactivate() {}
