package host

import "testing"

func TestShowMenuKeepsOnePanelEnabled(t *testing.T) {
	s := NewSim()

	var shown, hidden []string
	s.Hooks.PanelShown = func(p *Panel) { shown = append(shown, p.Name()) }
	s.Hooks.PanelHidden = func(p *Panel) { hidden = append(hidden, p.Name()) }

	s.ShowMenu(s.Options)
	if !s.Options.ActiveInHierarchy() {
		t.Fatalf("expected Options enabled after ShowMenu")
	}
	if s.MainMenu.ActiveInHierarchy() {
		t.Fatalf("expected Main Menu disabled after ShowMenu")
	}
	if len(hidden) != 1 || hidden[0] != "Main Menu" {
		t.Fatalf("unexpected hidden hooks %v", hidden)
	}
	if len(shown) != 1 || shown[0] != "Options" {
		t.Fatalf("unexpected shown hooks %v", shown)
	}

	// Showing the already-current panel raises nothing.
	s.ShowMenu(s.Options)
	if len(shown) != 1 || len(hidden) != 1 {
		t.Fatalf("expected no hooks for redundant ShowMenu, got shown=%v hidden=%v", shown, hidden)
	}
}

func TestSliderClampsAndDisplays(t *testing.T) {
	s := NewSim()
	master, ok := s.Options.Find("sldMaster").(*Slider)
	if !ok {
		t.Fatalf("expected sldMaster slider")
	}

	master.SetValue(99)
	if master.Value() != 10 {
		t.Fatalf("expected clamp to 10, got %v", master.Value())
	}
	if s.MasterVolume != 10 {
		t.Fatalf("expected onChanged to write through, got %v", s.MasterVolume)
	}
	if got := master.DisplayText(); got != "100%" {
		t.Fatalf("expected display mapping, got %q", got)
	}

	master.SetValue(-3)
	if master.Value() != 0 {
		t.Fatalf("expected clamp to 0, got %v", master.Value())
	}
}

func TestDropdownWrapsBothDirections(t *testing.T) {
	s := NewSim()
	res, ok := s.Options.Find("ddResolution").(*Dropdown)
	if !ok {
		t.Fatalf("expected ddResolution dropdown")
	}
	n := len(res.Options())

	res.SetIndex(res.Index() - 2)
	if res.Index() != n-1 {
		t.Fatalf("expected wrap below zero to %d, got %d", n-1, res.Index())
	}
	res.SetIndex(res.Index() + 1)
	if res.Index() != 0 {
		t.Fatalf("expected wrap past end to 0, got %d", res.Index())
	}
	if s.Resolution != "1280x720" {
		t.Fatalf("expected onChanged write-through, got %q", s.Resolution)
	}
}

func TestDestroyedWidgetIgnoresMutation(t *testing.T) {
	s := NewSim()
	tgl, ok := s.Options.Find("tglSubtitles").(*Toggle)
	if !ok {
		t.Fatalf("expected tglSubtitles toggle")
	}

	tgl.Destroy()
	tgl.SetValue(false)
	if tgl.Value() != true {
		t.Fatalf("expected destroyed toggle to keep its value")
	}
	if tgl.Interactable() {
		t.Fatalf("expected destroyed toggle to report not interactable")
	}
	if !s.Subtitles {
		t.Fatalf("expected no write-through from a destroyed toggle")
	}
}

func TestDialogVisibilityRequiresParentChain(t *testing.T) {
	s := NewSim()
	s.OpenCombat("Contact.", nil)
	if !s.CombatDialog.ActiveInHierarchy() {
		t.Fatalf("expected combat dialog visible under an enabled HUD")
	}

	// Hiding the HUD root hides every dialog with it.
	s.HUD.SetEnabled(false)
	if s.CombatDialog.ActiveInHierarchy() {
		t.Fatalf("expected combat dialog hidden with the HUD disabled")
	}
	s.HUD.SetEnabled(true)
	if !s.CombatDialog.ActiveInHierarchy() {
		t.Fatalf("expected combat dialog visible again")
	}
}

func TestAlertQueueDrainClosesDialog(t *testing.T) {
	s := NewSim()
	var hidden int
	s.Hooks.PanelHidden = func(p *Panel) {
		if p == s.AlertDialog {
			hidden++
		}
	}

	s.PushAlert(Alert{Title: "Research complete", Body: "Laser weapons."})
	s.PushAlert(Alert{Title: "Supply drop", Body: "Inbound."})
	if !s.AlertDialog.ActiveInHierarchy() {
		t.Fatalf("expected dialog shown after push")
	}
	// Two alerts plus a dismiss button.
	if got := len(s.AlertDialog.Widgets()); got != 3 {
		t.Fatalf("expected 3 dialog widgets, got %d", got)
	}

	s.DismissAlert()
	if !s.AlertDialog.ActiveInHierarchy() {
		t.Fatalf("expected dialog to stay up while alerts remain")
	}
	s.DismissAlert()
	if s.AlertDialog.ActiveInHierarchy() {
		t.Fatalf("expected dialog closed when the queue drained")
	}
	if hidden != 1 {
		t.Fatalf("expected one hidden hook, got %d", hidden)
	}
}

func TestCombatDialogRebuildsWidgets(t *testing.T) {
	s := NewSim()
	var texts []string
	s.Hooks.TextPopulated = func(source, text string) {
		if source == "combat" {
			texts = append(texts, text)
		}
	}

	s.OpenCombat("Ambush.", []string{"Ranger Vance", "Sniper Cole"})
	first := s.CombatDialog.Find("btnResolve")
	if first == nil {
		t.Fatalf("expected resolve button")
	}
	// Summary + 2 units + resolve + retreat.
	if got := len(s.CombatDialog.Widgets()); got != 5 {
		t.Fatalf("expected 5 dialog widgets, got %d", got)
	}

	s.CloseCombat()
	s.OpenCombat("Second wave.", []string{"Ranger Vance"})
	if s.CombatDialog.Find("btnResolve") == first {
		t.Fatalf("expected dialog widgets rebuilt on reopen")
	}
	if len(texts) != 2 {
		t.Fatalf("expected a combat text hook per open, got %d", len(texts))
	}
}
