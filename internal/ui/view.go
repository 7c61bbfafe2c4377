package ui

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
	clog "github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
)

type applyMsg struct {
	fn func(*Root)
}

type clockMsg time.Time
type frameMsg time.Time
type animateMsg time.Time

type reviewKeyMap struct {
	Toggle   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Decrease key.Binding
	Increase key.Binding
	Detail   key.Binding
	Journal  key.Binding
	Stats    key.Binding
	Combat   key.Binding
	Alert    key.Binding
	Policy   key.Binding
	Quit     key.Binding
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Prev, k.Activate, k.Detail, k.Journal, k.Quit}
}

func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Next, k.Prev, k.Activate},
		{k.Decrease, k.Increase, k.Detail, k.Journal, k.Stats},
		{k.Combat, k.Alert, k.Policy, k.Quit},
	}
}

type Root struct {
	theme        Theme
	ascii        bool
	debug        bool
	ctrl         Controller
	styleVariant string
	motionLevel  string

	mu      sync.Mutex
	program *tea.Program
	running bool

	layout LayoutMode
	cols   int
	rows   int

	forceTooSmall bool
	tooSmallCols  int
	tooSmallRows  int

	host        HostState
	review      ReviewState
	transcript  []TranscriptRow
	speaking    bool
	statusFlash string

	journalEntries []JournalEntry
	journalOpen    bool
	journalIndex   int
	detailText     string
	detailOpen     bool
	statsText      string
	statsOpen      bool

	help       help.Model
	keymap     reviewKeyMap
	sliderBar  progress.Model
	speakSpin  spinner.Model
	markdown   *glamour.TermRenderer
	logger     *clog.Logger
	overlayPos float64
	overlayVel float64
	spring     harmonica.Spring

	lastInputEvent string
}

type Options struct {
	ASCIIOnly    bool
	Debug        bool
	StyleVariant string
	MotionLevel  string
}

func New(opts Options) *Root {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "menuvox-ui", Level: clog.WarnLevel})
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		renderer = nil
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	motionLevel := normalizeMotionLevel(opts.MotionLevel)
	styleVariant := normalizeStyleVariant(opts.StyleVariant)
	theme := ThemeForVariant(styleVariant)
	spring := harmonica.NewSpring(harmonica.FPS(60), 10.0, 0.8)
	switch motionLevel {
	case "reduced":
		spring = harmonica.NewSpring(harmonica.FPS(30), 9.0, 0.92)
	case "off":
		spring = harmonica.NewSpring(harmonica.FPS(60), 1000.0, 1.0)
	}
	sliderBar := progress.New(
		progress.WithWidth(18),
		progress.WithColors(lipgloss.Color("#5EC2FF"), lipgloss.Color("#79E6A6"), lipgloss.Color("#F2D16B")),
		progress.WithScaled(true),
	)
	if motionLevel == "off" {
		sliderBar.SetSpringOptions(1000.0, 1.0)
	}
	speakSpin := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(theme.Accent),
	)

	r := &Root{
		theme:        theme,
		ascii:        opts.ASCIIOnly,
		debug:        opts.Debug,
		styleVariant: styleVariant,
		motionLevel:  motionLevel,
		layout:       LayoutWide,
		cols:         120,
		rows:         30,
		help:         h,
		sliderBar:    sliderBar,
		speakSpin:    speakSpin,
		markdown:     renderer,
		logger:       logger,
		spring:       spring,
	}
	r.keymap = reviewKeyMap{
		Toggle:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Review")),
		Next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Next")),
		Prev:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Prev")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Activate")),
		Decrease: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "Decrease")),
		Increase: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "Increase")),
		Detail:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Detail")),
		Journal:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "Journal")),
		Stats:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Stats")),
		Combat:   key.NewBinding(key.WithKeys("f5"), key.WithHelp("F5", "Combat")),
		Alert:    key.NewBinding(key.WithKeys("f6"), key.WithHelp("F6", "Alert")),
		Policy:   key.NewBinding(key.WithKeys("f7"), key.WithHelp("F7", "Policy")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("Ctrl+Q", "Quit")),
	}
	return r
}

func (r *Root) Init() tea.Cmd {
	return tea.Batch(clockTickCmd(), frameTickCmd(), spinnerTickCmd(r.speakSpin))
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec, msg)
			model = r
			cmd = nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols = msg.Width
		r.rows = msg.Height
		r.layout = DetermineLayoutMode(r.cols, r.rows)
		if r.layout != LayoutTooSmall {
			r.forceTooSmall = false
		}
		r.dispatchController(func(c Controller) { c.OnResize(msg.Width, msg.Height) })
		return r, nil
	case applyMsg:
		if msg.fn != nil {
			msg.fn(r)
		}
		return r, r.animateIfNeeded()
	case clockMsg:
		return r, clockTickCmd()
	case frameMsg:
		r.dispatchController(func(c Controller) { c.OnFrame() })
		return r, frameTickCmd()
	case animateMsg:
		target := 0.0
		if r.overlayActive() {
			target = 1.0
		}
		r.overlayPos, r.overlayVel = r.spring.Update(r.overlayPos, r.overlayVel, target)
		if r.shouldAnimate(target) {
			return r, animateTickCmd()
		}
		if target == 0 {
			r.overlayPos = 0
		} else {
			r.overlayPos = 1
		}
		r.overlayVel = 0
		return r, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		r.speakSpin, cmd = r.speakSpin.Update(msg)
		return r, cmd
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *Root) View() (view tea.View) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("view", rec, nil)
			width := max(1, r.cols)
			msg := "UI recovered from a rendering panic. Check logs."
			if r.statusFlash == "" {
				r.statusFlash = "Recovered UI panic"
			}
			view = tea.NewView(r.theme.Dormant.Width(width).Render(trimForWidth(msg, max(1, width-1))))
		}
	}()

	if r.cols < 1 {
		r.cols = 120
	}
	if r.rows < 1 {
		r.rows = 30
	}

	base := r.renderMain()
	if overlay := r.renderOverlay(); overlay != "" {
		base = composeOverlay(base, overlay, r.cols, r.rows)
	}
	v := tea.NewView(base)
	v.AltScreen = true
	return v
}

func (r *Root) Run() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (r *Root) SetController(c Controller) {
	r.ctrl = c
}

func (r *Root) SetHostState(state HostState) {
	r.apply(func(m *Root) {
		m.host = state
	})
}

func (r *Root) SetReviewState(state ReviewState) {
	r.apply(func(m *Root) {
		m.review = state
	})
}

func (r *Root) SetTranscript(rows []TranscriptRow) {
	r.apply(func(m *Root) {
		m.transcript = append([]TranscriptRow(nil), rows...)
	})
}

func (r *Root) SetSpeaking(speaking bool) {
	r.apply(func(m *Root) {
		m.speaking = speaking
	})
}

func (r *Root) SetJournal(entries []JournalEntry, open bool) {
	r.apply(func(m *Root) {
		m.journalEntries = append([]JournalEntry(nil), entries...)
		m.journalOpen = open
		if !open || m.journalIndex >= len(m.journalEntries) {
			m.journalIndex = 0
		}
	})
}

func (r *Root) SetDetail(text string, open bool) {
	r.apply(func(m *Root) {
		m.detailText = text
		m.detailOpen = open
	})
}

func (r *Root) SetStats(text string, open bool) {
	r.apply(func(m *Root) {
		m.statsText = text
		m.statsOpen = open
	})
}

func (r *Root) SetTooSmall(cols, rows int) {
	r.apply(func(m *Root) {
		m.forceTooSmall = true
		m.tooSmallCols = cols
		m.tooSmallRows = rows
	})
}

func (r *Root) FlashStatus(msg string) {
	r.apply(func(m *Root) {
		m.statusFlash = msg
	})
}

func (r *Root) apply(fn func(*Root)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	p := r.program
	running := r.running
	if !running || p == nil {
		fn(r)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	p.Send(applyMsg{fn: fn})
}

func (r *Root) dispatchController(fn func(Controller)) {
	if fn == nil || r.ctrl == nil {
		return
	}
	ctrl := r.ctrl
	go fn(ctrl)
}

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	r.recordInputEvent(fmt.Sprintf("key:%v mod:%v text:%q", msg.Code, msg.Mod, msg.Text))

	if key.Matches(msg, r.keymap.Quit) {
		r.dispatchController(func(c Controller) { c.OnQuit() })
		return r, nil
	}

	if r.overlayActive() {
		return r.handleOverlayKey(msg)
	}

	switch {
	case key.Matches(msg, r.keymap.Toggle):
		r.dispatchController(func(c Controller) { c.OnToggleReview() })
	case key.Matches(msg, r.keymap.Next):
		r.dispatchController(func(c Controller) { c.OnNextControl() })
	case key.Matches(msg, r.keymap.Prev):
		r.dispatchController(func(c Controller) { c.OnPrevControl() })
	case key.Matches(msg, r.keymap.Activate):
		r.dispatchController(func(c Controller) { c.OnActivateControl() })
	case key.Matches(msg, r.keymap.Decrease):
		r.dispatchController(func(c Controller) { c.OnAdjustControl(false) })
	case key.Matches(msg, r.keymap.Increase):
		r.dispatchController(func(c Controller) { c.OnAdjustControl(true) })
	case key.Matches(msg, r.keymap.Detail):
		r.dispatchController(func(c Controller) { c.OnReadDetail() })
	case key.Matches(msg, r.keymap.Journal):
		r.dispatchController(func(c Controller) { c.OnOpenJournal() })
	case key.Matches(msg, r.keymap.Stats):
		r.dispatchController(func(c Controller) { c.OnOpenStats() })
	case key.Matches(msg, r.keymap.Combat):
		r.dispatchController(func(c Controller) { c.OnTriggerCombat() })
	case key.Matches(msg, r.keymap.Alert):
		r.dispatchController(func(c Controller) { c.OnTriggerNotification() })
	case key.Matches(msg, r.keymap.Policy):
		r.dispatchController(func(c Controller) { c.OnTriggerPolicy() })
	}
	return r, r.animateIfNeeded()
}

func (r *Root) handleOverlayKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.Code == tea.KeyEsc || msg.Code == tea.KeyEscape ||
		(msg.Mod == 0 && (msg.Code == 'q' || msg.Code == 'Q')) {
		r.dismissTopOverlay()
		return r, r.animateIfNeeded()
	}

	if r.topOverlay() == "journal" && len(r.journalEntries) > 0 {
		switch msg.Code {
		case tea.KeyUp:
			r.journalIndex = max(0, r.journalIndex-1)
		case tea.KeyDown:
			r.journalIndex = min(len(r.journalEntries)-1, r.journalIndex+1)
		}
	}
	return r, nil
}

func (r *Root) topOverlay() string {
	switch {
	case r.detailOpen:
		return "detail"
	case r.statsOpen:
		return "stats"
	case r.journalOpen:
		return "journal"
	}
	return ""
}

func (r *Root) overlayActive() bool { return r.topOverlay() != "" }

func (r *Root) dismissTopOverlay() {
	switch r.topOverlay() {
	case "detail":
		r.detailOpen = false
	case "stats":
		r.statsOpen = false
	case "journal":
		r.journalOpen = false
		r.journalIndex = 0
	}
}

func (r *Root) renderMain() string {
	w, h := r.cols, r.rows
	mode := DetermineLayoutMode(w, h)
	if r.forceTooSmall {
		mode = LayoutTooSmall
	}
	r.layout = mode

	if mode == LayoutTooSmall {
		cols, rows := w, h
		if r.forceTooSmall {
			cols = r.tooSmallCols
			rows = r.tooSmallRows
		}
		msg := []string{
			"Terminal too small",
			fmt.Sprintf("Current: %dx%d", cols, rows),
			"Minimum: 80x24",
			"Resize the terminal to continue.",
		}
		panel := r.drawPanel("Resize Required", msg, min(60, w), min(12, h))
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, panel)
	}

	header := r.theme.Header.Width(max(1, w)).Render("MenuVox")
	status := r.statusText()
	bodyH := max(3, h-2)

	hostPanel := r.drawPanel("Host UI", r.hostLines(), min(44, max(30, w/3)), bodyH)
	reviewW := max(30, w-lipgloss.Width(hostPanel))
	var body string
	if mode == LayoutWide {
		reviewW = max(30, reviewW-min(40, max(26, w/4)))
		reviewPanel := r.drawPanel(r.reviewTitle(), r.reviewLines(), reviewW, bodyH)
		speechPanel := r.drawPanel("Speech", r.transcriptLines(), min(40, max(26, w/4)), bodyH)
		body = lipgloss.JoinHorizontal(lipgloss.Top, hostPanel, reviewPanel, speechPanel)
	} else {
		reviewPanel := r.drawPanel(r.reviewTitle(), r.reviewLines(), reviewW, bodyH)
		body = lipgloss.JoinHorizontal(lipgloss.Top, hostPanel, reviewPanel)
	}

	return header + "\n" + body + "\n" + status
}

func (r *Root) statusText() string {
	left := "Review: off"
	if r.review.Active {
		left = "Review: " + r.review.ScreenName
		if r.review.Mode != "" && r.review.Mode != "none" {
			left += " [" + r.review.Mode + "]"
		}
	}
	if r.speaking {
		left = r.speakSpin.View() + " " + left
	}
	if r.statusFlash != "" {
		left += "  " + r.statusFlash
	}
	helpView := r.help.View(r.keymap)
	line := left + "  " + helpView
	return r.theme.Status.Width(max(1, r.cols)).Render(trimForWidth(line, max(1, r.cols-2)))
}

func (r *Root) hostLines() []string {
	lines := []string{"Panel: " + r.host.PanelName, ""}
	for _, wr := range r.host.Widgets {
		line := fmt.Sprintf("%-12s %s", "["+wr.Kind+"]", wr.Label)
		if wr.Value != "" {
			line += " = " + wr.Value
		}
		lines = append(lines, line)
	}
	if len(r.host.Dialogs) > 0 {
		lines = append(lines, "", "Dialogs:")
		for _, d := range r.host.Dialogs {
			lines = append(lines, "  "+d)
		}
	}
	return lines
}

func (r *Root) reviewTitle() string {
	if !r.review.Active {
		return "Review (off)"
	}
	return "Review"
}

func (r *Root) reviewLines() []string {
	if !r.review.Active {
		return []string{"Review mode is off.", "", "Press r to start reviewing", "the current screen."}
	}
	var lines []string
	for i, row := range r.review.Rows {
		prefix := "  "
		if i == r.review.Cursor {
			prefix = "> "
		}
		line := prefix + row.Label
		if row.Kind != "" && row.Kind != "divider" {
			line += ", " + row.Kind
		}
		if row.Value != "" {
			line += ", " + row.Value
		}
		if !row.Interactable && row.Kind != "divider" {
			line += " (unavailable)"
		}
		lines = append(lines, line)
		if row.HasFraction && i == r.review.Cursor {
			lines = append(lines, "  "+r.sliderBar.ViewAs(row.Fraction))
		}
	}
	if len(lines) == 0 {
		lines = []string{"No controls on this screen."}
	}
	return lines
}

func (r *Root) transcriptLines() []string {
	var lines []string
	for _, row := range r.transcript {
		lines = append(lines, fmt.Sprintf("%s %s", row.When, row.Source))
		lines = append(lines, "  "+row.Text)
	}
	if len(lines) == 0 {
		lines = []string{"Nothing spoken yet."}
	}
	return lines
}

func (r *Root) renderOverlay() string {
	switch r.topOverlay() {
	case "detail":
		return r.drawPanel("Detail", r.markdownLines(r.detailText), min(78, r.cols-4), min(16, r.rows-4))
	case "stats":
		return r.drawPanel("Stats", r.markdownLines(r.statsText), min(60, r.cols-4), min(14, r.rows-4))
	case "journal":
		return r.drawPanel("Announcement Journal", r.journalLines(), min(78, r.cols-4), min(18, r.rows-4))
	}
	return ""
}

func (r *Root) journalLines() []string {
	if len(r.journalEntries) == 0 {
		return []string{"No announcements recorded."}
	}
	var lines []string
	for i, e := range r.journalEntries {
		prefix := "  "
		if i == r.journalIndex {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s [%s]", prefix, e.Timestamp, e.Source))
		lines = append(lines, "    "+e.Text)
	}
	lines = append(lines, "", "Esc closes")
	return lines
}

// markdownLines renders overlay text through glamour when available,
// falling back to the raw lines.
func (r *Root) markdownLines(text string) []string {
	if r.markdown != nil {
		if out, err := r.markdown.Render(text); err == nil {
			return strings.Split(strings.TrimRight(ansi.Strip(out), "\n"), "\n")
		}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func (r *Root) drawPanel(title string, lines []string, width, height int) string {
	width = max(4, width)
	height = max(3, height)
	innerW := width - 2
	innerH := height - 2

	h := "─"
	v := "│"
	tl := "┌"
	tr := "┐"
	bl := "└"
	br := "┘"
	if r.ascii {
		h = "-"
		v = "|"
		tl, tr, bl, br = "+", "+", "+", "+"
	}

	top := tl + strings.Repeat(h, innerW) + tr
	if title != "" && innerW > 2 {
		t := " " + title + " "
		runes := []rune(top)
		start := 1
		for i, ch := range []rune(t) {
			pos := start + i
			if pos >= len(runes)-1 {
				break
			}
			runes[pos] = ch
		}
		top = string(runes)
	}

	out := make([]string, 0, height)
	out = append(out, r.theme.PanelBorder.Render(top))
	for row := 0; row < innerH; row++ {
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		line = padRune(line, innerW)
		out = append(out, r.theme.PanelBorder.Render(v)+r.theme.PanelBody.Render(line)+r.theme.PanelBorder.Render(v))
	}
	out = append(out, r.theme.PanelBorder.Render(bl+strings.Repeat(h, innerW)+br))
	return strings.Join(out, "\n")
}

func (r *Root) animateIfNeeded() tea.Cmd {
	target := 0.0
	if r.overlayActive() {
		target = 1.0
	}
	if r.shouldAnimate(target) {
		return animateTickCmd()
	}
	return nil
}

func (r *Root) shouldAnimate(target float64) bool {
	if r.motionLevel == "off" {
		return false
	}
	if target > 0 {
		return r.overlayPos < 0.999 || abs(r.overlayVel) > 0.001
	}
	return r.overlayPos > 0.001 || abs(r.overlayVel) > 0.001
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockMsg(t) })
}

// frameTickCmd drives the once-per-frame controller update that pumps
// deferred announcements and resolves visibility drift.
func frameTickCmd() tea.Cmd {
	return tea.Tick(time.Second/20, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func animateTickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return animateMsg(t) })
}

func spinnerTickCmd(model spinner.Model) tea.Cmd {
	return func() tea.Msg {
		return model.Tick()
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func padRune(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.ReplaceAll(s, "\t", "    "))
	if len(r) > width {
		r = r[:width]
	}
	if len(r) < width {
		r = append(r, []rune(strings.Repeat(" ", width-len(r)))...)
	}
	return string(r)
}

func composeOverlay(base, overlay string, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return base
	}
	base = ansi.Strip(base)
	overlay = ansi.Strip(overlay)
	baseLines := strings.Split(base, "\n")
	if len(baseLines) < rows {
		pad := make([]string, rows-len(baseLines))
		baseLines = append(baseLines, pad...)
	}
	for i := 0; i < rows; i++ {
		baseLines[i] = padRune(baseLines[i], cols)
	}

	overlayLines := strings.Split(strings.TrimRight(overlay, "\n"), "\n")
	if len(overlayLines) == 0 {
		return strings.Join(baseLines[:rows], "\n")
	}
	ow := 1
	for _, line := range overlayLines {
		lw := len([]rune(line))
		if lw > ow {
			ow = lw
		}
	}
	if ow > cols {
		ow = cols
	}
	oh := len(overlayLines)
	if oh > rows {
		oh = rows
	}
	startRow := (rows - oh) / 2
	startCol := (cols - ow) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i := 0; i < oh; i++ {
		row := startRow + i
		if row < 0 || row >= rows {
			continue
		}
		dst := []rune(baseLines[row])
		src := []rune(overlayLines[i])
		if len(src) > ow {
			src = src[:ow]
		}
		for j := 0; j < ow && startCol+j < len(dst); j++ {
			dst[startCol+j] = ' '
		}
		for j := 0; j < len(src) && startCol+j < len(dst); j++ {
			dst[startCol+j] = src[j]
		}
		baseLines[row] = string(dst)
	}
	return strings.Join(baseLines[:rows], "\n")
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.ReplaceAll(ansi.Strip(s), "\n", " "))
	if len(r) <= width {
		return string(r)
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func normalizeStyleVariant(v string) string {
	switch strings.TrimSpace(v) {
	case "midnight", "high_contrast", "retro_terminal":
		return strings.TrimSpace(v)
	default:
		return "midnight"
	}
}

func normalizeMotionLevel(v string) string {
	switch strings.TrimSpace(v) {
	case "off", "reduced", "full":
		return strings.TrimSpace(v)
	default:
		return "full"
	}
}

func (r *Root) recordInputEvent(event string) {
	r.lastInputEvent = trimForWidth(strings.TrimSpace(event), 160)
}

func (r *Root) onModelPanic(where string, recovered any, msg tea.Msg) {
	if r.statusFlash == "" {
		r.statusFlash = "Recovered UI panic"
	}

	message := fmt.Sprintf("%v", recovered)
	msgType := ""
	if msg != nil {
		msgType = fmt.Sprintf("%T", msg)
	}
	r.logger.Error("ui.panic_recovered", map[string]any{
		"where":       where,
		"panic":       message,
		"messageType": msgType,
		"layout":      r.layout,
		"cols":        r.cols,
		"rows":        r.rows,
		"overlay":     r.topOverlay(),
		"last_input":  r.lastInputEvent,
		"stack":       string(debug.Stack()),
	})
}

var _ tea.Model = (*Root)(nil)
var _ View = (*Root)(nil)
