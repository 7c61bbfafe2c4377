package app

import (
	"context"
	"testing"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Speech.Backend = "off"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestConfigValidateDefaults(t *testing.T) {
	cfg := Config{DataDir: t.TempDir()}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Speech.Backend != "auto" {
		t.Fatalf("expected auto backend default, got %q", cfg.Speech.Backend)
	}
	if cfg.Speech.DebounceMS != 1500 {
		t.Fatalf("expected debounce default, got %d", cfg.Speech.DebounceMS)
	}
	if cfg.UI.StyleVariant != "midnight" {
		t.Fatalf("expected midnight variant, got %q", cfg.UI.StyleVariant)
	}
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cfg := Config{DataDir: t.TempDir()}
	cfg.Speech.Backend = "tape-deck"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for bad speech backend")
	}
	cfg = Config{DataDir: t.TempDir()}
	cfg.UI.StyleVariant = "neon"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for bad style variant")
	}
}

func TestToggleActivatesOnVisibleScreen(t *testing.T) {
	a := newTestApp(t)

	a.OnToggleReview()
	if !a.rc.Active() {
		t.Fatalf("expected review active after toggle")
	}
	if got := a.rc.CurrentScreenName(); got != "Main Menu" {
		t.Fatalf("expected Main Menu, got %q", got)
	}

	a.OnToggleReview()
	if a.rc.Active() {
		t.Fatalf("expected review dormant after second toggle")
	}
}

func TestActivationFollowsHostNavigation(t *testing.T) {
	a := newTestApp(t)
	a.OnToggleReview()

	// Main Menu order: New Game, Load Game, Skirmish, Options, Mods, Quit.
	a.OnNextControl()
	a.OnNextControl()
	a.OnNextControl()
	a.OnActivateControl()

	if got := a.rc.CurrentScreenName(); got != "Options" {
		t.Fatalf("expected Options after activating, got %q", got)
	}
	if !a.sim.Options.ActiveInHierarchy() {
		t.Fatalf("expected host options panel to be shown")
	}
}

func TestLeavingOptionsPersistsSettings(t *testing.T) {
	a := newTestApp(t)
	a.OnToggleReview()

	// Navigate to Options.
	a.OnNextControl()
	a.OnNextControl()
	a.OnNextControl()
	a.OnActivateControl()

	// Cursor to master volume (index 1, past the Audio divider) and
	// nudge it down twice.
	a.OnNextControl()
	a.OnAdjustControl(false)
	a.OnAdjustControl(false)
	if a.sim.MasterVolume != 6 {
		t.Fatalf("expected master volume 6, got %v", a.sim.MasterVolume)
	}

	// Leaving the screen saves the host settings.
	a.OnToggleReview()
	values, err := a.store.LoadSettings(context.Background())
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if values["master_volume"] != "6" {
		t.Fatalf("expected persisted master_volume=6, got %q", values["master_volume"])
	}
}

func TestCombatTriggerEntersSubMode(t *testing.T) {
	a := newTestApp(t)
	a.OnToggleReview()

	a.OnTriggerCombat()
	if a.rc.CurrentMode().String() != "combat" {
		t.Fatalf("expected combat mode, got %q", a.rc.CurrentMode())
	}

	// Resolve closes the dialog and restores the menu screen.
	rows := a.reviewState().Rows
	resolve := -1
	for i, row := range rows {
		if row.Label == "Resolve" {
			resolve = i
		}
	}
	if resolve < 0 {
		t.Fatalf("expected Resolve button in combat rows: %+v", rows)
	}
	for i := 0; i < resolve; i++ {
		a.OnNextControl()
	}
	a.OnActivateControl()

	if a.rc.CurrentMode().String() != "none" {
		t.Fatalf("expected sub-mode exit after resolve, got %q", a.rc.CurrentMode())
	}
	if got := a.rc.CurrentScreenName(); got != "Main Menu" {
		t.Fatalf("expected restore to Main Menu, got %q", got)
	}
}

func TestCombatWhileDormantLatchesPendingFlag(t *testing.T) {
	a := newTestApp(t)

	a.OnTriggerCombat()
	// Dormant entry auto-activates review for the dialog.
	if !a.rc.Active() {
		t.Fatalf("expected auto-activation on combat open")
	}
	if a.rc.CurrentMode().String() != "combat" {
		t.Fatalf("expected combat mode, got %q", a.rc.CurrentMode())
	}

	// Closing the dialog drops back to dormant.
	a.sim.CloseCombat()
	if a.rc.Active() {
		t.Fatalf("expected dormant after auto-activated combat closed")
	}
}

func TestJournalRecordsSpokenText(t *testing.T) {
	a := newTestApp(t)
	a.OnToggleReview()
	a.OnNextControl()

	entries, err := a.store.RecentAnnouncements(context.Background(), 5)
	if err != nil {
		t.Fatalf("recent announcements: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected journaled announcements after navigation")
	}
}
