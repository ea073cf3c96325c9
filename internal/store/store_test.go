package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dr-rompecabezas/langportal/internal/api"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SettingsRepo().Save(ctx, Settings{APIBaseURL: "http://portal.test"}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.SettingsRepo().Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.APIBaseURL != "http://portal.test" {
		t.Errorf("APIBaseURL = %q after reopen", got.APIBaseURL)
	}
}

func TestSettingsSaveAndGet(t *testing.T) {
	repo := openTestStore(t).SettingsRepo()
	ctx := context.Background()

	// Nothing stored yet.
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != (Settings{}) {
		t.Errorf("expected empty settings, got %+v", got)
	}

	if err := repo.Save(ctx, Settings{APIBaseURL: "http://a.test", SessionsPerPage: 20}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Partial save leaves the other key alone.
	if err := repo.Save(ctx, Settings{SessionsPerPage: 5}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := Settings{APIBaseURL: "http://a.test", SessionsPerPage: 5}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, _ = repo.Get(ctx)
	if got != (Settings{}) {
		t.Errorf("expected empty settings after clear, got %+v", got)
	}
}

func TestRequestLog(t *testing.T) {
	repo := openTestStore(t).RequestLogRepo()
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	events := []api.RequestEvent{
		{RequestID: "a", Method: "GET", Path: "/api/v1/words", StatusCode: 200, Latency: 12 * time.Millisecond, Success: true, At: base},
		{RequestID: "b", Method: "GET", Path: "/api/v1/dashboard/stats", StatusCode: 500, Latency: 3 * time.Millisecond, ErrorMessage: "boom", At: base.Add(time.Second)},
		{RequestID: "c", Method: "GET", Path: "/api/v1/study-sessions", StatusCode: 0, ErrorMessage: "connection refused", At: base.Add(2 * time.Second)},
	}
	for _, ev := range events {
		if err := repo.RecordRequest(ctx, ev); err != nil {
			t.Fatalf("record %s: %v", ev.RequestID, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].RequestID != "c" || recent[1].RequestID != "b" {
		t.Errorf("expected newest first, got %s, %s", recent[0].RequestID, recent[1].RequestID)
	}
	if recent[1].StatusCode != 500 || recent[1].Success || recent[1].ErrorMessage != "boom" {
		t.Errorf("unexpected record %+v", recent[1])
	}
	if !recent[1].Timestamp.Equal(base.Add(time.Second)) {
		t.Errorf("timestamp = %v", recent[1].Timestamp)
	}

	all, _ := repo.Recent(ctx, 0)
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if !all[2].Success || all[2].Latency != 12*time.Millisecond {
		t.Errorf("unexpected oldest record %+v", all[2])
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, _ = repo.Recent(ctx, 0)
	if len(all) != 0 {
		t.Errorf("expected empty log after clear, got %d", len(all))
	}
}

func TestRequestLogIsRecorder(t *testing.T) {
	var _ api.Recorder = openTestStore(t).RequestLogRepo()
}
