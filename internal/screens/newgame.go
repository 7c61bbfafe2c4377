package screens

import (
	"menuvox/internal/host"
	"menuvox/internal/menu"
)

type NewGame struct {
	menu.Base
	sim *host.Sim
}

func NewNewGame(sim *host.Sim, nav menu.Navigator) *NewGame {
	s := &NewGame{sim: sim}
	s.SetNavigator(nav)
	s.RouteAction("back", "Main Menu")
	return s
}

func (s *NewGame) Name() string { return "New Game" }

func (s *NewGame) IsVisible() bool { return s.sim.NewGame.ActiveInHierarchy() }

func (s *NewGame) Refresh() {
	s.Reset()
	p := s.sim.NewGame
	s.Add(
		menu.FromDropdown(asDropdown(p.Find("ddFaction")), "faction"),
		menu.FromDropdown(asDropdown(p.Find("ddDifficulty")), "difficulty"),
		menu.FromToggle(asToggle(p.Find("tglIronman")), "ironman"),
		menu.FromInput(asInput(p.Find("inCommander")), "commander"),
		menu.FromButton(asButton(p.Find("btnBegin")), "begin"),
		menu.FromButton(asButton(p.Find("btnBack")), "back"),
	)
}

func (s *NewGame) ActivationAnnouncement() string {
	return menu.CountAnnouncement("New Game", s.ControlCount(), "settings")
}

func (s *NewGame) OnDeactivate() {}
