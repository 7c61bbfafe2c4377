package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoggerWritesOneJSONObjectPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.jsonl")
	l, err := NewJSONLogger(path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.Info("review activated", map[string]any{"session": "abc"})
	l.With(map[string]any{"screen": "Options"}).Warn("unknown screen requested", nil)
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := 0
	for _, line := range splitLines(raw) {
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("line %d not valid JSON: %v", lines, err)
		}
		if entry["msg"] == nil || entry["level"] == nil || entry["ts"] == nil {
			t.Fatalf("entry missing standard fields: %v", entry)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected 2 entries, got %d", lines)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *JSONLogger
	l.Info("ignored", nil)
	l.With(map[string]any{"k": "v"}).Error("ignored", nil)
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func splitLines(raw []byte) [][]byte {
	var out [][]byte
	start := 0
	for i, b := range raw {
		if b == '\n' {
			if i > start {
				out = append(out, raw[start:i])
			}
			start = i + 1
		}
	}
	if start < len(raw) {
		out = append(out, raw[start:])
	}
	return out
}
