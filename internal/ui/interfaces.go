package ui

// Controller receives keyboard intents from the view. Implementations
// must tolerate calls from the view's dispatch goroutine.
type Controller interface {
	OnToggleReview()
	OnNextControl()
	OnPrevControl()
	OnActivateControl()
	OnAdjustControl(increment bool)
	OnReadDetail()
	OnOpenJournal()
	OnOpenStats()
	OnTriggerCombat()
	OnTriggerNotification()
	OnTriggerPolicy()
	OnFrame()
	OnQuit()
	OnResize(cols, rows int)
}

type View interface {
	Run() error
	Stop()
	SetController(Controller)
	SetHostState(HostState)
	SetReviewState(ReviewState)
	SetTranscript(rows []TranscriptRow)
	SetSpeaking(speaking bool)
	SetJournal(entries []JournalEntry, open bool)
	SetDetail(text string, open bool)
	SetStats(text string, open bool)
	SetTooSmall(cols, rows int)
	FlashStatus(msg string)
}

type LayoutMode int

const (
	LayoutWide LayoutMode = iota
	LayoutMedium
	LayoutTooSmall
)

// HostState mirrors the simulated game UI for rendering.
type HostState struct {
	PanelName string
	Widgets   []WidgetRow
	Dialogs   []string
}

type WidgetRow struct {
	Label string
	Kind  string
	Value string
}

// ReviewState is the review layer as the player experiences it: which
// screen the cursor is on, where it points, and what each row says.
type ReviewState struct {
	Active     bool
	Mode       string
	ScreenName string
	Cursor     int
	Rows       []ControlRow
}

type ControlRow struct {
	Label        string
	Kind         string
	Value        string
	Interactable bool
	// Fraction is the slider position in [0,1]; HasFraction gates the
	// progress bar rendering.
	Fraction    float64
	HasFraction bool
}

// TranscriptRow is one spoken utterance shown in the speech panel.
type TranscriptRow struct {
	When   string
	Source string
	Text   string
}

type JournalEntry struct {
	Timestamp string
	Source    string
	Text      string
}
