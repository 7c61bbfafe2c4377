package state

import (
	"context"
	"time"
)

type Store interface {
	EnsureSchema(ctx context.Context) error
	SaveSettings(ctx context.Context, values map[string]string) error
	LoadSettings(ctx context.Context) (map[string]string, error)
	InsertAnnouncement(ctx context.Context, entry Announcement) error
	RecentAnnouncements(ctx context.Context, limit int) ([]Announcement, error)
	BeginSession(ctx context.Context, id string, at time.Time) error
	EndSession(ctx context.Context, id string, at time.Time) error
	GetSummary(ctx context.Context) (Summary, error)
	Close() error
}

// Announcement is one journaled utterance: what was actually sent to
// the synthesizer, after cleaning and debouncing.
type Announcement struct {
	TS     time.Time
	Source string
	Text   string
}

// Summary aggregates stored history for the stats readout.
type Summary struct {
	Sessions      int
	OpenSessions  int
	Announcements int
}
