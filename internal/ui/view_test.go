package ui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

type mockController struct {
	toggleCalls   int
	nextCalls     int
	activateCalls int
	adjustUps     int
	adjustDowns   int
	detailCalls   int
	quitCalls     int
}

func (m *mockController) OnToggleReview()   { m.toggleCalls++ }
func (m *mockController) OnNextControl()    { m.nextCalls++ }
func (m *mockController) OnPrevControl()    {}
func (m *mockController) OnActivateControl() { m.activateCalls++ }
func (m *mockController) OnAdjustControl(increment bool) {
	if increment {
		m.adjustUps++
	} else {
		m.adjustDowns++
	}
}
func (m *mockController) OnReadDetail()          { m.detailCalls++ }
func (m *mockController) OnOpenJournal()         {}
func (m *mockController) OnOpenStats()           {}
func (m *mockController) OnTriggerCombat()       {}
func (m *mockController) OnTriggerNotification() {}
func (m *mockController) OnTriggerPolicy()       {}
func (m *mockController) OnFrame()               {}
func (m *mockController) OnQuit()                { m.quitCalls++ }
func (m *mockController) OnResize(int, int)      {}

func press(v *Root, code rune, mod tea.KeyMod, text string) {
	_, _ = v.Update(tea.KeyPressMsg{Code: code, Mod: mod, Text: text})
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(300 * time.Millisecond)
	for !cond() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !cond() {
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestToggleKeyDispatchesReviewToggle(t *testing.T) {
	v := New(Options{})
	ctrl := &mockController{}
	v.SetController(ctrl)

	press(v, 'r', 0, "r")

	waitFor(t, func() bool { return ctrl.toggleCalls == 1 }, "toggle dispatch")
}

func TestArrowKeysDriveCursorAndAdjust(t *testing.T) {
	v := New(Options{})
	ctrl := &mockController{}
	v.SetController(ctrl)

	press(v, tea.KeyDown, 0, "")
	press(v, tea.KeyRight, 0, "")
	press(v, tea.KeyLeft, 0, "")

	waitFor(t, func() bool {
		return ctrl.nextCalls == 1 && ctrl.adjustUps == 1 && ctrl.adjustDowns == 1
	}, "cursor and adjust dispatch")
}

func TestEnterActivatesControl(t *testing.T) {
	v := New(Options{})
	ctrl := &mockController{}
	v.SetController(ctrl)

	press(v, tea.KeyEnter, 0, "")

	waitFor(t, func() bool { return ctrl.activateCalls == 1 }, "activate dispatch")
}

func TestOverlayEscClosesJournal(t *testing.T) {
	v := New(Options{})
	v.SetJournal([]JournalEntry{{Timestamp: "10:00", Source: "test", Text: "hello"}}, true)

	if !v.journalOpen {
		t.Fatalf("expected journal overlay to be open")
	}
	press(v, tea.KeyEsc, 0, "")
	if v.journalOpen {
		t.Fatalf("expected journal overlay to close on escape")
	}
}

func TestOverlaySwallowsNavigationKeys(t *testing.T) {
	v := New(Options{})
	ctrl := &mockController{}
	v.SetController(ctrl)
	v.SetDetail("Master volume, slider, 80%", true)

	press(v, tea.KeyDown, 0, "")
	time.Sleep(50 * time.Millisecond)

	if ctrl.nextCalls != 0 {
		t.Fatalf("expected overlay to swallow navigation keys, got %d next calls", ctrl.nextCalls)
	}
}

func TestCtrlQQuits(t *testing.T) {
	v := New(Options{})
	ctrl := &mockController{}
	v.SetController(ctrl)

	press(v, 'q', tea.ModCtrl, "")

	waitFor(t, func() bool { return ctrl.quitCalls == 1 }, "quit dispatch")
}

func TestViewImplementsInterfaceCompileTime(t *testing.T) {
	var _ View = New(Options{})
}

func TestRenderSurvivesEmptyState(t *testing.T) {
	v := New(Options{ASCIIOnly: true})
	v.cols = 100
	v.rows = 30
	_ = v.View()

	v.SetReviewState(ReviewState{
		Active:     true,
		ScreenName: "Options",
		Cursor:     1,
		Rows: []ControlRow{
			{Label: "Audio", Kind: "divider"},
			{Label: "Master volume", Kind: "slider", Value: "80%", Interactable: true, Fraction: 0.8, HasFraction: true},
		},
	})
	_ = v.View()
}
