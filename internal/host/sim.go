package host

import "fmt"

// SaveFile is one entry in the load-game list.
type SaveFile struct {
	Name    string
	Date    string
	Faction string
}

// ModEntry is one entry in the mod manager list.
type ModEntry struct {
	Name    string
	Version string
	Enabled bool
}

// Alert is one entry in the notification queue.
type Alert struct {
	Title  string
	Body   string
	Source string
}

// Sim is an in-process game UI used by the demo harness and the tests:
// the panels and named widgets a real host would expose, wired to a
// hook bus. Screens scrape specific named widgets off it exactly the
// way the original layer scraped named controller fields.
type Sim struct {
	Hooks *Hooks

	MainMenu *Panel
	NewGame  *Panel
	LoadGame *Panel
	Options  *Panel
	Skirmish *Panel
	Mods     *Panel

	// HUD is the root the dialog overlays hang off; hiding it (the
	// host does this during cutscenes) hides every dialog with it.
	HUD *Panel

	CombatDialog *Panel
	AlertDialog  *Panel
	PolicyDialog *Panel

	Saves  []SaveFile
	ModsAv []ModEntry
	Alerts []Alert

	// Gameplay knobs mutated through the options widgets.
	MasterVolume float64
	MusicVolume  float64
	Fullscreen   bool
	Subtitles    bool
	Autosave     bool
	Resolution   string
	SpeechRate   float64

	QuitRequested bool

	current *Panel
}

// NewSim builds the fixture UI. All panels exist from the start; only
// one menu panel is enabled at a time, dialogs overlay independently.
func NewSim() *Sim {
	s := &Sim{
		Hooks:        &Hooks{},
		MasterVolume: 8,
		MusicVolume:  5,
		Subtitles:    true,
		Autosave:     true,
		Resolution:   "1920x1080",
		SpeechRate:   4,
		Saves: []SaveFile{
			{Name: "Autosave", Date: "2208-03-14", Faction: "The Initiative"},
			{Name: "Before the landing", Date: "2207-11-02", Faction: "The Academy"},
			{Name: "Campaign start", Date: "2205-01-01", Faction: "The Resistance"},
		},
		ModsAv: []ModEntry{
			{Name: "Extended Ledger", Version: "1.4", Enabled: true},
			{Name: "Colorblind Icons", Version: "0.9", Enabled: false},
		},
	}

	s.MainMenu = NewPanel("Main Menu")
	s.MainMenu.Add(
		NewButton("btnNewGame", "New Game", func() { s.ShowMenu(s.NewGame) }),
		NewButton("btnLoadGame", "Load Game", func() { s.ShowMenu(s.LoadGame) }),
		NewButton("btnSkirmish", "Skirmish", func() { s.ShowMenu(s.Skirmish) }),
		NewButton("btnOptions", "Options", func() { s.ShowMenu(s.Options) }),
		NewButton("btnMods", "Mods", func() { s.ShowMenu(s.Mods) }),
		NewButton("btnQuit", "Quit", func() { s.QuitRequested = true }),
	)

	s.NewGame = NewPanel("New Game")
	s.NewGame.Add(
		NewDropdown("ddFaction", "Faction", []string{"The Initiative", "The Academy", "The Resistance", "Humanity First"}, 0, nil),
		NewDropdown("ddDifficulty", "Difficulty", []string{"Cadet", "Veteran", "Brutal"}, 1, nil),
		NewToggle("tglIronman", "Ironman", false, nil),
		NewInputField("inCommander", "Commander name", "", nil),
		NewButton("btnBegin", "Begin Campaign", nil),
		NewButton("btnBack", "Back", func() { s.ShowMenu(s.MainMenu) }),
	)

	s.LoadGame = NewPanel("Load Game")
	s.rebuildLoadList()

	s.Options = NewPanel("Options")
	master := NewSlider("sldMaster", "Master volume", s.MasterVolume, 0, 10, 1, func(v float64) { s.MasterVolume = v })
	master.SetDisplayFunc(func(v float64) string { return fmt.Sprintf("%d%%", int(v*10)) })
	music := NewSlider("sldMusic", "Music volume", s.MusicVolume, 0, 10, 1, func(v float64) { s.MusicVolume = v })
	music.SetDisplayFunc(func(v float64) string { return fmt.Sprintf("%d%%", int(v*10)) })
	rate := NewSlider("sldSpeechRate", "Speech rate", s.SpeechRate, 1, 9, 1, func(v float64) { s.SpeechRate = v })
	s.Options.Add(
		master,
		music,
		NewDropdown("ddResolution", "Resolution", []string{"1280x720", "1920x1080", "2560x1440", "3840x2160"}, 1, func(i int) {
			s.Resolution = []string{"1280x720", "1920x1080", "2560x1440", "3840x2160"}[i]
		}),
		NewToggle("tglFullscreen", "Fullscreen", s.Fullscreen, func(v bool) { s.Fullscreen = v }),
		NewToggle("tglSubtitles", "Subtitles", s.Subtitles, func(v bool) { s.Subtitles = v }),
		NewToggle("tglAutosave", "Autosave", s.Autosave, func(v bool) { s.Autosave = v }),
		rate,
		NewButton("btnBack", "Back", func() { s.ShowMenu(s.MainMenu) }),
	)

	s.Skirmish = NewPanel("Skirmish")
	s.Skirmish.Add(
		NewDropdown("ddMap", "Map", []string{"Lunar Relay", "Kuiper Drift", "Mars Orbit"}, 0, nil),
		NewSlider("sldOpponents", "Opponents", 2, 1, 6, 1, nil),
		NewButton("btnLaunch", "Launch", nil),
		NewButton("btnBack", "Back", func() { s.ShowMenu(s.MainMenu) }),
	)

	s.Mods = NewPanel("Mods")
	s.rebuildModList()

	s.HUD = NewPanel("HUD")
	s.HUD.SetEnabled(true)
	s.CombatDialog = s.HUD.AddChildPanel("Combat")
	s.AlertDialog = s.HUD.AddChildPanel("Notifications")
	s.PolicyDialog = s.HUD.AddChildPanel("Policy Selection")

	s.MainMenu.SetEnabled(true)
	s.current = s.MainMenu
	return s
}

// ShowMenu swaps the enabled menu panel and raises the shown/hidden
// hooks, the way the host would on a screen transition.
func (s *Sim) ShowMenu(p *Panel) {
	if p == nil || p == s.current {
		return
	}
	prev := s.current
	if prev != nil {
		prev.SetEnabled(false)
		s.Hooks.emitPanelHidden(prev)
	}
	p.SetEnabled(true)
	s.current = p
	s.Hooks.emitPanelShown(p)
}

// Current reports the enabled menu panel.
func (s *Sim) Current() *Panel { return s.current }

func (s *Sim) rebuildLoadList() {
	s.LoadGame.widgets = nil
	for i, sv := range s.Saves {
		sv := sv
		s.LoadGame.Add(NewListItem(
			fmt.Sprintf("save%d", i),
			sv.Name,
			fmt.Sprintf("%s. Saved %s. Faction %s.", sv.Name, sv.Date, sv.Faction),
			nil,
		))
	}
	s.LoadGame.Add(NewButton("btnBack", "Back", func() { s.ShowMenu(s.MainMenu) }))
}

func (s *Sim) rebuildModList() {
	s.Mods.widgets = nil
	for i := range s.ModsAv {
		i := i
		m := &s.ModsAv[i]
		s.Mods.Add(NewToggle(
			fmt.Sprintf("mod%d", i),
			fmt.Sprintf("%s %s", m.Name, m.Version),
			m.Enabled,
			func(v bool) { m.Enabled = v },
		))
	}
	s.Mods.Add(NewButton("btnBack", "Back", func() { s.ShowMenu(s.MainMenu) }))
}

// OpenCombat populates and shows the combat dialog. The dialog widgets
// are rebuilt each time; stale snapshots must not be dereferenced.
func (s *Sim) OpenCombat(summary string, units []string) {
	s.CombatDialog.widgets = nil
	s.CombatDialog.Add(NewListItem("combatSummary", "Combat summary", summary, nil))
	for i, u := range units {
		s.CombatDialog.Add(NewListItem(fmt.Sprintf("unit%d", i), u, u, nil))
	}
	s.CombatDialog.Add(
		NewButton("btnResolve", "Resolve", func() { s.CloseCombat() }),
		NewButton("btnRetreat", "Retreat", func() { s.CloseCombat() }),
	)
	s.CombatDialog.SetEnabled(true)
	s.Hooks.emitPanelShown(s.CombatDialog)
	s.Hooks.emitText("combat", summary)
}

func (s *Sim) CloseCombat() {
	if !s.CombatDialog.ActiveInHierarchy() {
		return
	}
	s.CombatDialog.SetEnabled(false)
	s.Hooks.emitPanelHidden(s.CombatDialog)
}

// PushAlert appends to the queue and shows the notification dialog.
func (s *Sim) PushAlert(a Alert) {
	s.Alerts = append(s.Alerts, a)
	s.rebuildAlertList()
	if !s.AlertDialog.ActiveInHierarchy() {
		s.AlertDialog.SetEnabled(true)
		s.Hooks.emitPanelShown(s.AlertDialog)
	}
}

// DismissAlert removes the front of the queue; the dialog closes when
// the queue drains.
func (s *Sim) DismissAlert() {
	if len(s.Alerts) == 0 {
		return
	}
	s.Alerts = s.Alerts[1:]
	s.rebuildAlertList()
	if len(s.Alerts) == 0 && s.AlertDialog.ActiveInHierarchy() {
		s.AlertDialog.SetEnabled(false)
		s.Hooks.emitPanelHidden(s.AlertDialog)
	}
}

func (s *Sim) rebuildAlertList() {
	s.AlertDialog.widgets = nil
	for i, a := range s.Alerts {
		a := a
		s.AlertDialog.Add(NewListItem(
			fmt.Sprintf("alert%d", i),
			a.Title,
			fmt.Sprintf("%s. %s", a.Title, a.Body),
			nil,
		))
	}
	if len(s.Alerts) > 0 {
		s.AlertDialog.Add(NewButton("btnDismiss", "Dismiss", func() { s.DismissAlert() }))
	}
}

// OpenPolicy shows the policy picker with the given options.
func (s *Sim) OpenPolicy(title string, options []string) {
	s.PolicyDialog.widgets = nil
	s.PolicyDialog.Add(NewListItem("policyTitle", title, title, nil))
	for i, opt := range options {
		s.PolicyDialog.Add(NewListItem(fmt.Sprintf("policy%d", i), opt, opt, func() { s.ClosePolicy() }))
	}
	s.PolicyDialog.Add(NewButton("btnCancel", "Cancel", func() { s.ClosePolicy() }))
	s.PolicyDialog.SetEnabled(true)
	s.Hooks.emitPanelShown(s.PolicyDialog)
}

func (s *Sim) ClosePolicy() {
	if !s.PolicyDialog.ActiveInHierarchy() {
		return
	}
	s.PolicyDialog.SetEnabled(false)
	s.Hooks.emitPanelHidden(s.PolicyDialog)
}
