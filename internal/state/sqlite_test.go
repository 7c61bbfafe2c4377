package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	store, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("new sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveSettings(ctx, map[string]string{
		"master_volume": "8",
		"speech_rate":   "4",
	}); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	// Overwrite one key, leave the other.
	if err := store.SaveSettings(ctx, map[string]string{"speech_rate": "6"}); err != nil {
		t.Fatalf("save settings overwrite: %v", err)
	}

	got, err := store.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got["master_volume"] != "8" {
		t.Fatalf("expected master_volume=8, got %q", got["master_volume"])
	}
	if got["speech_rate"] != "6" {
		t.Fatalf("expected speech_rate=6, got %q", got["speech_rate"])
	}
}

func TestAnnouncementJournal(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	for i, text := range []string{"Main Menu. 6 items.", "Options. 7 settings.", "Master volume 80%"} {
		if err := store.InsertAnnouncement(ctx, Announcement{
			TS:     base.Add(time.Duration(i) * time.Second),
			Source: "test",
			Text:   text,
		}); err != nil {
			t.Fatalf("insert announcement %d: %v", i, err)
		}
	}
	// Blank text is dropped, not stored.
	if err := store.InsertAnnouncement(ctx, Announcement{TS: base, Source: "test", Text: "  "}); err != nil {
		t.Fatalf("insert blank announcement: %v", err)
	}

	got, err := store.RecentAnnouncements(ctx, 2)
	if err != nil {
		t.Fatalf("recent announcements: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Text != "Master volume 80%" {
		t.Fatalf("expected newest first, got %q", got[0].Text)
	}
	if got[0].TS.IsZero() {
		t.Fatalf("expected timestamp to survive round trip")
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	if err := store.BeginSession(ctx, "session-a", start); err != nil {
		t.Fatalf("begin session: %v", err)
	}
	if err := store.BeginSession(ctx, "session-b", start.Add(time.Minute)); err != nil {
		t.Fatalf("begin session b: %v", err)
	}
	// Double begin is idempotent.
	if err := store.BeginSession(ctx, "session-a", start.Add(time.Hour)); err != nil {
		t.Fatalf("duplicate begin: %v", err)
	}
	if err := store.EndSession(ctx, "session-a", start.Add(10*time.Minute)); err != nil {
		t.Fatalf("end session: %v", err)
	}

	sum, err := store.GetSummary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Sessions != 2 {
		t.Fatalf("expected 2 sessions, got %d", sum.Sessions)
	}
	if sum.OpenSessions != 1 {
		t.Fatalf("expected 1 open session, got %d", sum.OpenSessions)
	}
}
