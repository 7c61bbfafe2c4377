package telemetry

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

type JSONLogger struct {
	mu     *sync.Mutex
	w      io.WriteCloser
	fields map[string]any
}

func NewJSONLogger(path string) (*JSONLogger, error) {
	if path == "" {
		return &JSONLogger{mu: &sync.Mutex{}, w: nopCloser{Writer: io.Discard}}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &JSONLogger{mu: &sync.Mutex{}, w: f}, nil
}

// With returns a logger that stamps every entry with the given fields.
// The underlying writer is shared with the parent.
func (l *JSONLogger) With(fields map[string]any) *JSONLogger {
	if l == nil {
		return nil
	}
	merged := map[string]any{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &JSONLogger{mu: l.mu, w: l.w, fields: merged}
}

func (l *JSONLogger) Info(msg string, fields map[string]any) {
	l.log("info", msg, fields)
}

func (l *JSONLogger) Warn(msg string, fields map[string]any) {
	l.log("warn", msg, fields)
}

func (l *JSONLogger) Error(msg string, fields map[string]any) {
	l.log("error", msg, fields)
}

func (l *JSONLogger) log(level, msg string, fields map[string]any) {
	if l == nil || l.w == nil {
		return
	}
	entry := map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": level,
		"msg":   msg,
	}
	for k, v := range l.fields {
		entry[k] = v
	}
	for k, v := range fields {
		entry[k] = v
	}
	b, _ := json.Marshal(entry)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(append(b, '\n'))
}

func (l *JSONLogger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	return l.w.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
