// Package app wires the simulated host, the review controller, the
// speech bridge, and the TUI harness into one running program.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"menuvox/internal/host"
	"menuvox/internal/menu"
	"menuvox/internal/review"
	"menuvox/internal/screens"
	"menuvox/internal/speech"
	"menuvox/internal/state"
	"menuvox/internal/telemetry"
	"menuvox/internal/ui"
)

type App struct {
	cfg Config

	logger *telemetry.JSONLogger
	stderr *clog.Logger
	store  *state.SQLiteStore
	sim    *host.Sim

	synth     speech.Synthesizer
	announcer *speech.Announcer
	deferred  *speech.Deferred
	rc        *review.Controller

	view ui.View

	mu sync.Mutex

	// trMu guards the transcript ring separately: announcements arrive
	// synchronously from inside operations that already hold mu.
	trMu       sync.Mutex
	transcript []ui.TranscriptRow

	sessionID string
}

func New(cfg Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	logger, err := telemetry.NewJSONLogger(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	store, err := state.NewSQLite(filepath.Join(cfg.DataDir, "state.db"))
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		_ = store.Close()
		_ = logger.Close()
		return nil, err
	}

	stderr := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "menuvox", Level: clog.WarnLevel})
	if cfg.Debug {
		stderr.SetLevel(clog.DebugLevel)
	}

	var synth speech.Synthesizer
	switch cfg.Speech.Backend {
	case "off":
		synth = speech.Discard{}
	case "log":
		synth = speech.LogSynth{Logger: stderr}
	default:
		if cs := speech.NewCommandSynth(stderr); cs != nil {
			synth = cs
		} else {
			synth = speech.LogSynth{Logger: stderr}
		}
	}

	announcer := speech.NewAnnouncer(synth, time.Duration(cfg.Speech.DebounceMS)*time.Millisecond)
	deferred := speech.NewDeferred(announcer, time.Duration(cfg.Speech.DeferredCooldownMS)*time.Millisecond)

	sim := host.NewSim()
	rc := review.NewController(logger, announcer, deferred, sessionStore{store: store})

	view := ui.New(ui.Options{
		ASCIIOnly:    cfg.ASCIIOnly,
		Debug:        cfg.Debug,
		StyleVariant: cfg.UI.StyleVariant,
		MotionLevel:  cfg.UI.MotionLevel,
	})

	a := &App{
		cfg:       cfg,
		logger:    logger,
		stderr:    stderr,
		store:     store,
		sim:       sim,
		synth:     synth,
		announcer: announcer,
		deferred:  deferred,
		rc:        rc,
		view:      view,
		sessionID: uuid.NewString(),
	}

	announcer.SetJournal(a)
	announcer.SetSpeakingFunc(a.setSpeaking)

	rc.RegisterScreen(screens.NewMainMenu(sim, rc))
	rc.RegisterScreen(screens.NewNewGame(sim, rc))
	rc.RegisterScreen(screens.NewLoadGame(sim, rc))
	rc.RegisterScreen(screens.NewOptions(sim, rc, a))
	rc.RegisterScreen(screens.NewSkirmish(sim, rc))
	rc.RegisterScreen(screens.NewMods(sim, rc))
	rc.SetSubModeScreens(review.NewCombat(sim), review.NewNotification(sim), review.NewPolicy(sim))
	review.BindHooks(rc, sim, announcer)

	a.applySavedSettings()
	a.applySpeechRate()

	view.SetController(a)
	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("app.start", map[string]any{
		"session": a.sessionID,
		"speech":  a.cfg.Speech.Backend,
	})
	a.mu.Lock()
	a.syncView()
	a.mu.Unlock()
	return a.view.Run()
}

func (a *App) Close() {
	a.view.Stop()
	_ = a.store.Close()
	_ = a.logger.Close()
}

// RecordAnnouncement implements speech.JournalSink: every utterance
// that reached the synthesizer lands in the journal table and the
// transcript panel.
func (a *App) RecordAnnouncement(ts time.Time, source, text string) {
	if err := a.store.InsertAnnouncement(context.Background(), state.Announcement{TS: ts, Source: source, Text: text}); err != nil {
		a.logger.Warn("announcement not journaled", map[string]any{"error": err.Error()})
	}

	a.trMu.Lock()
	a.transcript = append(a.transcript, ui.TranscriptRow{
		When:   ts.Format("15:04:05"),
		Source: source,
		Text:   text,
	})
	if len(a.transcript) > 8 {
		a.transcript = a.transcript[len(a.transcript)-8:]
	}
	rows := append([]ui.TranscriptRow(nil), a.transcript...)
	a.trMu.Unlock()
	a.view.SetTranscript(rows)
}

// setSpeaking drives the spinner. The announcer only signals the start
// of an utterance, so the indicator decays on a timer.
func (a *App) setSpeaking(on bool) {
	a.view.SetSpeaking(on)
	if on {
		time.AfterFunc(900*time.Millisecond, func() { a.view.SetSpeaking(false) })
	}
}

// SaveHostSettings implements screens.SettingsSaver: fired when the
// player leaves the options screen. Fire-and-forget.
func (a *App) SaveHostSettings(values map[string]string) {
	if err := a.store.SaveSettings(context.Background(), values); err != nil {
		a.logger.Warn("settings not saved", map[string]any{"error": err.Error()})
		return
	}
	a.logger.Info("settings saved", map[string]any{"count": len(values)})
	a.applySpeechRate()
}

// applySpeechRate pushes the speech-rate slider value into the
// synthesizer when the backend supports a rate flag.
func (a *App) applySpeechRate() {
	rs, ok := a.synth.(interface{ SetRate(int) })
	if !ok {
		return
	}
	if w, found := a.sim.Options.Find("sldSpeechRate").(*host.Slider); found {
		rs.SetRate(int(w.Value()))
	}
}

// applySavedSettings pushes persisted option values back into the host
// widgets on startup, so the sim reopens where the player left it.
func (a *App) applySavedSettings() {
	values, err := a.store.LoadSettings(context.Background())
	if err != nil {
		a.logger.Warn("settings not loaded", map[string]any{"error": err.Error()})
		return
	}
	setSlider := func(name, key string) {
		w, ok := a.sim.Options.Find(name).(*host.Slider)
		if !ok {
			return
		}
		if f, err := strconv.ParseFloat(values[key], 64); err == nil {
			w.SetValue(f)
		}
	}
	setToggle := func(name, key string) {
		w, ok := a.sim.Options.Find(name).(*host.Toggle)
		if !ok {
			return
		}
		if b, err := strconv.ParseBool(values[key]); err == nil {
			w.SetValue(b)
		}
	}
	setSlider("sldMaster", "master_volume")
	setSlider("sldMusic", "music_volume")
	setSlider("sldSpeechRate", "speech_rate")
	setToggle("tglFullscreen", "fullscreen")
	setToggle("tglSubtitles", "subtitles")
	setToggle("tglAutosave", "autosave")
	if w, ok := a.sim.Options.Find("ddResolution").(*host.Dropdown); ok {
		if want := values["resolution"]; want != "" {
			for i, opt := range w.Options() {
				if opt == want {
					w.SetIndex(i)
					break
				}
			}
		}
	}
}

func (a *App) OnToggleReview() {
	a.mu.Lock()
	defer a.mu.Unlock()
	wasActive := a.rc.Active()
	a.rc.Toggle()
	// A combat that started while review was off is waiting; jump
	// straight to it if the dialog is still up.
	if !wasActive && a.rc.Active() && a.rc.CheckAndClearCombatPendingFlag() && a.sim.CombatDialog.ActiveInHierarchy() {
		a.rc.EnterCombatMode()
	}
	a.syncView()
}

func (a *App) OnNextControl() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rc.NextControl()
	a.syncView()
}

func (a *App) OnPrevControl() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rc.PrevControl()
	a.syncView()
}

func (a *App) OnActivateControl() {
	a.mu.Lock()
	a.rc.ActivateCursor()
	quit := a.sim.QuitRequested
	a.syncView()
	a.mu.Unlock()
	if quit {
		a.view.Stop()
	}
}

func (a *App) OnAdjustControl(increment bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rc.AdjustCursor(increment)
	a.syncView()
}

func (a *App) OnReadDetail() {
	a.mu.Lock()
	text := a.rc.CursorDetail()
	a.rc.ReadDetail()
	a.syncView()
	a.mu.Unlock()
	if text != "" {
		a.view.SetDetail(text, true)
	}
}

func (a *App) OnOpenJournal() {
	entries, err := a.store.RecentAnnouncements(context.Background(), 12)
	if err != nil {
		a.logger.Warn("journal not loaded", map[string]any{"error": err.Error()})
		a.view.FlashStatus("Journal unavailable")
		return
	}
	rows := make([]ui.JournalEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ui.JournalEntry{
			Timestamp: e.TS.Local().Format("15:04:05"),
			Source:    e.Source,
			Text:      e.Text,
		})
	}
	a.view.SetJournal(rows, true)
}

func (a *App) OnOpenStats() {
	sum, err := a.store.GetSummary(context.Background())
	if err != nil {
		a.logger.Warn("stats not loaded", map[string]any{"error": err.Error()})
		a.view.FlashStatus("Stats unavailable")
		return
	}
	text := fmt.Sprintf(
		"# Review Stats\n\n- Sessions: %d\n- Open sessions: %d\n- Announcements spoken: %d\n",
		sum.Sessions, sum.OpenSessions, sum.Announcements,
	)
	a.view.SetStats(text, true)
}

func (a *App) OnTriggerCombat() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sim.OpenCombat("Ambush at Lunar Relay. 3 hostiles inbound.", []string{
		"Ranger Vance, 8 HP, overwatch",
		"Specialist Odum, 6 HP, hunkered",
		"Rookie Tan, 5 HP, flanked",
	})
	a.syncView()
}

func (a *App) OnTriggerNotification() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sim.PushAlert(host.Alert{
		Title:  "Research complete",
		Body:   "Gauss weapons are ready to manufacture.",
		Source: "research",
	})
	a.syncView()
}

func (a *App) OnTriggerPolicy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sim.OpenPolicy("Choose a council policy", []string{
		"Tax incentives",
		"Open borders",
		"Rapid conscription",
	})
	a.syncView()
}

// OnFrame runs once per UI frame: visibility drift resolution and the
// deferred announcement pump.
func (a *App) OnFrame() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rc.Update()
	a.syncView()
}

func (a *App) OnQuit() {
	a.view.Stop()
}

func (a *App) OnResize(cols, rows int) {
	a.logger.Info("ui.resize", map[string]any{"cols": cols, "rows": rows})
}

// syncView pushes the host and review state into the TUI. Caller holds
// a.mu.
func (a *App) syncView() {
	a.view.SetHostState(a.hostState())
	a.view.SetReviewState(a.reviewState())
}

func (a *App) hostState() ui.HostState {
	out := ui.HostState{}
	if p := a.sim.Current(); p != nil {
		out.PanelName = p.Name()
		for _, w := range p.Widgets() {
			out.Widgets = append(out.Widgets, widgetRow(w))
		}
	}
	for _, d := range []*host.Panel{a.sim.CombatDialog, a.sim.AlertDialog, a.sim.PolicyDialog} {
		if d.ActiveInHierarchy() {
			out.Dialogs = append(out.Dialogs, d.Name())
		}
	}
	return out
}

func widgetRow(w host.Widget) ui.WidgetRow {
	switch t := w.(type) {
	case *host.Button:
		return ui.WidgetRow{Label: t.Label, Kind: "button"}
	case *host.Toggle:
		v := "off"
		if t.Value() {
			v = "on"
		}
		return ui.WidgetRow{Label: t.Label, Kind: "toggle", Value: v}
	case *host.Slider:
		return ui.WidgetRow{Label: t.Label, Kind: "slider", Value: t.DisplayText()}
	case *host.Dropdown:
		return ui.WidgetRow{Label: t.Label, Kind: "dropdown", Value: t.Selected()}
	case *host.InputField:
		return ui.WidgetRow{Label: t.Label, Kind: "input", Value: t.Text()}
	case *host.ListItem:
		return ui.WidgetRow{Label: t.Label, Kind: "item"}
	default:
		return ui.WidgetRow{Label: w.Name(), Kind: "widget"}
	}
}

func (a *App) reviewState() ui.ReviewState {
	out := ui.ReviewState{
		Active:     a.rc.Active(),
		Mode:       a.rc.CurrentMode().String(),
		ScreenName: a.rc.CurrentScreenName(),
		Cursor:     a.rc.CursorIndex(),
	}
	s := a.rc.Current()
	if !out.Active || s == nil {
		return out
	}
	for _, c := range s.Controls() {
		row := ui.ControlRow{
			Label:        c.Label,
			Kind:         c.Type.String(),
			Value:        c.RefreshValue(),
			Interactable: c.Interactable,
		}
		if c.Type == menu.TypeDivider {
			row.Value = ""
		}
		if f, ok := c.Fraction(); ok {
			row.Fraction = f
			row.HasFraction = true
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// sessionStore adapts the SQLite store to the review controller's
// session callbacks.
type sessionStore struct {
	store *state.SQLiteStore
}

func (s sessionStore) BeginReviewSession(id string, at time.Time) error {
	return s.store.BeginSession(context.Background(), id, at)
}

func (s sessionStore) EndReviewSession(id string, at time.Time) error {
	return s.store.EndSession(context.Background(), id, at)
}
