package speech

import (
	"os/exec"
	"strconv"
	"strings"
	"sync"

	clog "github.com/charmbracelet/log"
)

// Synthesizer is the output end of the speech bridge. Speak with
// interrupt=true cuts off any in-progress utterance; interrupt=false
// queues behind it.
type Synthesizer interface {
	Speak(text string, interrupt bool)
}

// CommandSynth shells out to a local speech dispatcher binary. It is
// fire-and-forget: a failed spawn is logged once and further errors are
// ignored so a missing binary never stalls navigation.
type CommandSynth struct {
	program string
	args    []string
	logger  *clog.Logger

	mu       sync.Mutex
	rateArgs []string
	current  *exec.Cmd
	warned   bool
}

// speechPrograms lists known dispatcher binaries in preference order,
// with the flags that make them cancel the running utterance.
var speechPrograms = []struct {
	name          string
	args          []string
	interruptArgs []string
}{
	{name: "spd-say", args: []string{"--wait"}, interruptArgs: []string{"--cancel", "--wait"}},
	{name: "say", args: nil, interruptArgs: nil},
	{name: "espeak-ng", args: nil, interruptArgs: nil},
	{name: "espeak", args: nil, interruptArgs: nil},
}

// NewCommandSynth locates a speech dispatcher on PATH. Returns nil if
// none is available; callers fall back to a LogSynth.
func NewCommandSynth(logger *clog.Logger) *CommandSynth {
	for _, p := range speechPrograms {
		if _, err := exec.LookPath(p.name); err == nil {
			return &CommandSynth{program: p.name, args: p.args, logger: logger}
		}
	}
	return nil
}

func (s *CommandSynth) Speak(text string, interrupt bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if interrupt && s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
		s.current = nil
	}
	args := append(append([]string(nil), s.args...), s.rateArgs...)
	args = append(args, text)
	cmd := exec.Command(s.program, args...)
	if err := cmd.Start(); err != nil {
		if !s.warned && s.logger != nil {
			s.logger.Warn("speech dispatcher failed to start", "program", s.program, "err", err)
			s.warned = true
		}
		return
	}
	s.current = cmd
	go func() { _ = cmd.Wait() }()
}

func (s *CommandSynth) Program() string { return s.program }

// SetRate maps the options screen's 1..9 speech-rate scale onto the
// dispatcher's own rate flag. Out-of-range values clamp.
func (s *CommandSynth) SetRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	if rate > 9 {
		rate = 9
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.program {
	case "spd-say":
		// spd-say takes -100..100.
		s.rateArgs = []string{"-r", strconv.Itoa((rate - 5) * 25)}
	case "say":
		// macOS say takes words per minute.
		s.rateArgs = []string{"-r", strconv.Itoa(120 + rate*20)}
	case "espeak-ng", "espeak":
		s.rateArgs = []string{"-s", strconv.Itoa(100 + rate*15)}
	}
}

// LogSynth routes utterances to the logger. Used when no dispatcher is
// installed and in headless runs.
type LogSynth struct {
	Logger *clog.Logger
}

func (s LogSynth) Speak(text string, interrupt bool) {
	if s.Logger == nil {
		return
	}
	s.Logger.Info("speak", "text", text, "interrupt", interrupt)
}

// Memory records utterances for tests.
type Memory struct {
	mu         sync.Mutex
	Utterances []string
	Interrupts []bool
}

func (m *Memory) Speak(text string, interrupt bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Utterances = append(m.Utterances, text)
	m.Interrupts = append(m.Interrupts, interrupt)
}

func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Utterances) == 0 {
		return ""
	}
	return m.Utterances[len(m.Utterances)-1]
}

func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Utterances)
}

func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Utterances = nil
	m.Interrupts = nil
}

// Discard drops everything. Stands in for a muted bridge.
type Discard struct{}

func (Discard) Speak(string, bool) {}
