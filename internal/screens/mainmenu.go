// Package screens holds the concrete Review Mode surfaces for each
// host menu. Every screen scrapes its own named widgets on Refresh and
// asks the controller for screen switches through the Navigator.
package screens

import (
	"menuvox/internal/host"
	"menuvox/internal/menu"
)

type MainMenu struct {
	menu.Base
	sim *host.Sim
}

func NewMainMenu(sim *host.Sim, nav menu.Navigator) *MainMenu {
	s := &MainMenu{sim: sim}
	s.SetNavigator(nav)
	s.RouteAction("new_game", "New Game")
	s.RouteAction("load_game", "Load Game")
	s.RouteAction("skirmish", "Skirmish")
	s.RouteAction("options", "Options")
	s.RouteAction("mods", "Mods")
	return s
}

func (s *MainMenu) Name() string { return "Main Menu" }

func (s *MainMenu) IsVisible() bool { return s.sim.MainMenu.ActiveInHierarchy() }

func (s *MainMenu) Refresh() {
	s.Reset()
	p := s.sim.MainMenu
	s.Add(
		menu.FromButton(asButton(p.Find("btnNewGame")), "new_game"),
		menu.FromButton(asButton(p.Find("btnLoadGame")), "load_game"),
		menu.FromButton(asButton(p.Find("btnSkirmish")), "skirmish"),
		menu.FromButton(asButton(p.Find("btnOptions")), "options"),
		menu.FromButton(asButton(p.Find("btnMods")), "mods"),
		menu.FromButton(asButton(p.Find("btnQuit")), "quit"),
	)
}

func (s *MainMenu) ActivationAnnouncement() string {
	return menu.CountAnnouncement("Main Menu", s.ControlCount(), "options")
}

func (s *MainMenu) OnDeactivate() {}

// Widget downcasts. Find returns nil for absent widgets and the
// factories return nil for wrong or destroyed ones, so layout drift
// degrades to a shorter control list instead of a fault.
func asButton(w host.Widget) *host.Button {
	b, _ := w.(*host.Button)
	return b
}

func asToggle(w host.Widget) *host.Toggle {
	t, _ := w.(*host.Toggle)
	return t
}

func asSlider(w host.Widget) *host.Slider {
	s, _ := w.(*host.Slider)
	return s
}

func asDropdown(w host.Widget) *host.Dropdown {
	d, _ := w.(*host.Dropdown)
	return d
}

func asInput(w host.Widget) *host.InputField {
	f, _ := w.(*host.InputField)
	return f
}
