package screens

import (
	"menuvox/internal/host"
	"menuvox/internal/menu"
)

type LoadGame struct {
	menu.Base
	sim *host.Sim
}

func NewLoadGame(sim *host.Sim, nav menu.Navigator) *LoadGame {
	s := &LoadGame{sim: sim}
	s.SetNavigator(nav)
	s.RouteAction("back", "Main Menu")
	return s
}

func (s *LoadGame) Name() string { return "Load Game" }

func (s *LoadGame) IsVisible() bool { return s.sim.LoadGame.ActiveInHierarchy() }

// Refresh walks the save list rather than fixed names: the list
// controller rebuilds rows whenever saves change.
func (s *LoadGame) Refresh() {
	s.Reset()
	for _, w := range s.sim.LoadGame.Widgets() {
		switch t := w.(type) {
		case *host.ListItem:
			s.Add(menu.FromListItem(t, "load_save"))
		case *host.Button:
			s.Add(menu.FromButton(t, "back"))
		}
	}
}

func (s *LoadGame) ActivationAnnouncement() string {
	saves := 0
	for _, c := range s.Controls() {
		if c.Type == menu.TypeScrollListItem {
			saves++
		}
	}
	return menu.CountAnnouncement("Load Game", saves, "save files")
}

func (s *LoadGame) OnDeactivate() {}
